// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jeranaias/intentdesk-tui/internal/ui/styles"
	"github.com/jeranaias/intentdesk-tui/internal/util"
)

// FormatSlotValue renders a filled-slot value for display. JSON numbers
// arrive as float64; integral values drop the fraction.
func FormatSlotValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case nil:
		return "-"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// SlotBadge renders one "Label: value" pair using the slot-key display
// transform (pickupLocation -> "Pickup location").
func SlotBadge(theme *styles.Theme, key string, value any) string {
	return theme.BadgeLabel.Render(util.SlotLabel(key)+": ") +
		theme.BadgeValue.Render(FormatSlotValue(value))
}

// SlotBadges renders every filled slot, one per line, in stable key order.
// Map insertion order is irrelevant on the wire, so rows sort by label.
func SlotBadges(theme *styles.Theme, slots map[string]any) []string {
	keys := make([]string, 0, len(slots))
	for k := range slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, SlotBadge(theme, k, slots[k]))
	}
	return lines
}
