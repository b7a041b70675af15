// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

/*
Package supervisor runs the long-lived parts of the server under a suture v4
tree.

	RootSupervisor ("videotube")
	├── BackgroundSupervisor ("background-layer")
	│   ├── DBMonitorService
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events go
through sutureslog to an slog.Logger, which main backs with zerolog via
logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddBackgroundService(services.NewDBMonitorService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

The service implementations live in the services subpackage.
*/
package supervisor
