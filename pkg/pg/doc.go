// Package pg owns the PostgreSQL connection lifecycle for the service.
//
// The pool is acquired exactly once at process start and released exactly
// once at shutdown; main defers pool.Close() so teardown runs on every
// exit path, including failures later in startup. There is no mid-process
// re-acquisition: if the pool becomes unusable the process is expected to
// die and be restarted by the platform. The only retrying this package
// does is the startup backoff in Connect, which papers over the database
// coming up a moment after the service in orchestrated deployments.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		// fatal: the service cannot run without storage
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		// fatal
//	}
//
// Error helpers such as IsNotFoundError and IsForeignKeyViolationError
// classify pgx and pgconn errors so callers never match on driver error
// text.
package pg
