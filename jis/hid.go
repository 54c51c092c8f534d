package jis

import "fmt"

// HID usage codes (USB HID Keyboard/Keypad usage page) for keys that only
// exist on JIS boards and have no named ZMK constant.
const (
	UsageInternational1 = 0x87 // \ and _ (Ro)
	UsageInternational3 = 0x89 // Yen and |
)

// Usage formats a raw HID usage code the way ZMK keymaps accept it.
func Usage(code uint8) string {
	return fmt.Sprintf("0x%x", code)
}

// LeftShift wraps a key code in the ZMK left-shift modifier function.
func LeftShift(code string) string {
	return "LS(" + code + ")"
}
