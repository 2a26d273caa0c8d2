// Package file stores metricminer settings in config.toml under the XDG
// config directory ($XDG_CONFIG_HOME/metricminer by default). Writes happen
// on every Set and Delete; the file is created with mode 0600.
package file
