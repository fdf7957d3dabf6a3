package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"sound":                 "Glass",
		"editor":                "zed",
		"data_dir":              "~/.claude/notifier",
		"delivery_timeout_secs": 5,
		"busy_timeout_millis":   5000,
		"log_max_size_mb":       5,
		"log_max_backups":       7,
	}
}
