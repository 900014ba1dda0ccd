// Package driver applies a rendered deployment to the host: it writes the
// systemd unit and the nginx vhost, creates project directories, and runs
// the control commands that activate them.
//
// # Drivers
//
//   - NginxDriver: sites-available file, sites-enabled symlink, nginx -t,
//     systemctl reload nginx
//   - SystemdDriver: /etc/systemd/system/<project>.service, daemon-reload,
//     enable, restart
//
// # Pipeline
//
//	prov := driver.NewProvisioner(nginx, systemd)
//	res, err := prov.Provision(cfg.ProjectName, cfg.Directories(), unit, site)
//
//	act := driver.NewActivator(nginx, systemd)
//	link, err := act.Activate(cfg.ProjectName)
//
// Every step is fatal on failure. There is no rollback: files, directories
// and links created before a failing step stay in place.
//
// # Testing
//
// Each driver provides a WithExecutor constructor that accepts platform
// paths rooted in a temp directory and a mock executor.CommandExecutor:
//
//	mockExec := &executor.MockExecutor{}
//	drv := driver.NewNginxWithExecutor(platform.UnderRoot(t.TempDir()), mockExec)
package driver
