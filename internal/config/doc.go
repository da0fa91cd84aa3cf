// Package config loads the optional per-project hyrun.yaml file.
//
// The file supplies defaults for the run command. Command-line flags take
// precedence over it, and it takes precedence over built-in defaults:
//
//	jarUrl: https://example.test/HytaleServer.jar
//	plugin: build/libs/camera-plugin.jar
//	java: /usr/lib/jvm/java-25/bin/java
//	jvmArgs: ["-Xmx4G"]
//	serverArgs: ["--assets", "../Assets.zip"]
//	debugPort: 5005
//	cacheDir: /var/cache/hyrun
package config
