// Package supervisor runs the server as a child process and relays its IO.
//
// [Launch] starts `java <jvm args> -jar <jar> <server args>` in the staged
// run directory and returns a [Process] handle. The child gets its own
// process group, so terminal interrupts reach the launcher only and the
// launcher decides how the child is stopped.
//
// [Relay] attaches three line pumps: child stdout to the console's stdout,
// child stderr to the console's stderr, and console stdin to child stdin.
// Pumps are independent; one failing leaves the others running.
//
// A [Coordinator] waits for the child and, when the session ends first,
// asks it to terminate gracefully with SIGTERM. It never kills the child.
//
// Example usage:
//
//	proc, err := supervisor.Launch(supervisor.LaunchOptions{
//	    Dir: ws.Root,
//	    Jar: "server.jar",
//	})
//	if err != nil {
//	    return err
//	}
//
//	pumps := supervisor.Relay(proc, supervisor.StdConsole())
//	code := supervisor.NewCoordinator(proc).Run(ctx)
//	pumps.Wait(2 * time.Second)
package supervisor
