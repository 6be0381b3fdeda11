package config

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/ustaad",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Provider:         "gemini",
		OpenAIModel:      "gpt-4o-mini",
		GeminiModel:      "gemini-2.5-flash",
		PersonaIntensity: "balanced",
		MaxHistoryItems:  10,
	}
}

func GenerateSystemConfigTemplate() string {
	return `# Ustaad System Configuration
# Location: ~/.config/ustaad/settings.toml
# This file uses TOML format: https://toml.io

# Directory where history and user config are stored
data_directory = "~/.local/share/ustaad"
`
}

func GenerateUserConfigTemplate() string {
	return `# Ustaad User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

# Which provider answers: "openai" or "gemini"
provider = "gemini"

# Model per provider
openai_model = "gpt-4o-mini"
gemini_model = "gemini-2.5-flash"

# Persona: "strict", "balanced", or "funny"
persona_intensity = "balanced"

# How many past explanations to keep
max_history_items = 10
`
}
