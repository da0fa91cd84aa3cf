// Package launch runs one server session from configuration to exit code.
//
// [Run] resolves the server jar, stages the run directory, starts the
// server, relays the console to it and waits for it to exit. Everything it
// needs is passed in through [Options]; nothing is read from the environment
// or global state.
//
// Example usage:
//
//	code, err := launch.Run(ctx, launch.Options{
//	    ProjectRoot: ".",
//	    JarURL:      "libs/HytaleServer.jar",
//	    Plugin:      "build/libs/plugin.jar",
//	    Console:     supervisor.StdConsole(),
//	})
//	if err != nil {
//	    return err
//	}
//	os.Exit(code)
package launch
