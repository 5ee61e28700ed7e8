package config

// Base application details
const AppName = "glance"
const Version = "0.1.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file

const DefaultTabWidth = 4
const MaxTabWidth = 16
