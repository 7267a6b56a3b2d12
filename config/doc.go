// Package config loads and saves the startup profile (default.cfg, INI
// format): session duration, per-waveform parameter defaults and display
// settings.
//
// The profile is a plain key-value provider for initial values — it is
// read once at startup and never consulted by the generation or
// aggregation cores. Loading is deliberately forgiving: a missing file,
// a missing key, an unparseable float or an unknown wave-type name all
// silently fall back to the built-in defaults.
package config
