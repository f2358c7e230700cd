package utils

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	reMessageLink = regexp.MustCompile(`https://discord(?:app)?\.com/channels/\d+/\d+/(\d+)`)
	reSnowflake   = regexp.MustCompile(`^\d{15,21}$`)
)

// ParseMessageID 解析消息ID（支持原始ID和消息链接）
func ParseMessageID(input string) (string, error) {
	if matches := reMessageLink.FindStringSubmatch(input); len(matches) == 2 {
		return matches[1], nil
	}
	if reSnowflake.MatchString(input) {
		return input, nil
	}
	return "", errors.New("invalid message ID or link")
}

// FormatDuration renders a duration as "3m 20s" for rate-limit replies.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
