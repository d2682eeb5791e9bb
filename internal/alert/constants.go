package alert

import "time"

// Log messages
const (
	LogMsgAlert          = "Operator alert"
	LogMsgAlertThrottled = "Alert throttled"
)

// DefaultCooldown suppresses repeats of the same alert key
const DefaultCooldown = 5 * time.Minute

// DefaultThrottleSize bounds the number of distinct alert keys remembered
const DefaultThrottleSize = 512

// Discord embed colours by severity
const (
	ColorInfo    = 0x3498DB
	ColorWarning = 0xF1C40F
	ColorError   = 0xE74C3C
)

// DiscordUsername is shown as the webhook author
const DiscordUsername = "MakeServer"
