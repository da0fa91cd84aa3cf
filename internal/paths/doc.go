// Provides platform-appropriate paths for the launcher.
//
// Durable state lives under the XDG cache directory on Linux and the
// platform-native cache directory on macOS and Windows, in a "hyrun"
// subdirectory. The project-relative run directory layout is also defined
// here so that the stager and the supervisor agree on it.
package paths
