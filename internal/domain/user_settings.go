package domain

import "time"

// UserSettings is the single per-user preferences row, keyed on user_id and
// maintained through upsert-on-conflict.
type UserSettings struct {
	UserID      string    `json:"user_id"`
	NotifEmail  bool      `json:"notif_email"`
	NotifPush   bool      `json:"notif_push"`
	NotifWeekly bool      `json:"notif_weekly"`
	Theme       string    `json:"theme"`
	Language    string    `json:"language"`
	Timezone    string    `json:"timezone"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SettingsInput carries caller-supplied settings fields. Nil booleans coerce
// to false, nil strings fall back to SettingsDefaults, both at write time.
type SettingsInput struct {
	NotifEmail  *bool   `json:"notif_email"`
	NotifPush   *bool   `json:"notif_push"`
	NotifWeekly *bool   `json:"notif_weekly"`
	Theme       *string `json:"theme"`
	Language    *string `json:"language"`
	Timezone    *string `json:"timezone"`
}

// SettingsDefaults enumerates every option default in one place instead of
// re-deriving fallbacks per field at each call site.
type SettingsDefaults struct {
	Theme    string
	Language string
	Timezone string
}

func DefaultSettings() SettingsDefaults {
	return SettingsDefaults{
		Theme:    "dark",
		Language: "en-US",
		Timezone: "UTC",
	}
}
