/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence over environment variables, which take precedence over
defaults. The sqlite database type needs no URL; postgres requires one.

Usage:

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		// configuration error, unusable
	}

Supported settings:

  - -p / PORT: server port (default 4180)
  - -d / DATABASE_URL: database connection string
  - -t / DATABASE_TYPE: sqlite or postgres (default sqlite)
  - --org / ORG_NAME: organisation name
  - --bootstrap-user, --bootstrap-pass / BOOTSTRAP_USER, BOOTSTRAP_PASS:
    operator account provisioned at startup
*/
package cliparse
