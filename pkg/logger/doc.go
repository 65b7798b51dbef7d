// Package logger builds the service's *slog.Logger.
//
// New applies functional options to select format (text or json), minimum
// level, static attributes and ContextExtractor callbacks that pull
// request-scoped values (request id, tenant, principal) out of the context
// on every log call.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "uplift"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			tenantscope.LoggerExtractor(),
//			principal.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
package logger
