// Package config holds the deployment record collected from the operator and
// the optional settings file that tunes prompt defaults.
//
// # Deployment Record
//
// DeploymentConfig is the single transient record of a run. Prompted fields
// are plain struct fields; derived values (the gunicorn binary and the
// gunicorn Unix socket) are methods, so they always reflect the prompted
// fields at the moment they are read:
//
//	cfg := &config.DeploymentConfig{ProjectName: "infohub", VenvPath: "/var/www/infohub/venv"}
//	cfg.GunicornBin() // /var/www/infohub/venv/bin/gunicorn
//	cfg.SocketPath()  // /run/gunicorn-infohub.sock
//
// # Settings File
//
// Settings are read from /etc/djdeploy/config.yaml, or from the file named
// by DJDEPLOY_CONFIG. A missing file yields built-in defaults.
//
// Example config.yaml:
//
//	default_user: deploy
//	default_group: deploy
//	www_root: /srv/www
//	verbose: true
//
// Settings only change the defaults offered at each prompt. System paths,
// the gunicorn worker count and the proxy read timeout are fixed.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. A run is a single
// sequential procedure.
package config
