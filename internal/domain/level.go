package domain

import "fmt"

// CompressionLevel is applied uniformly to every item of a batch.
type CompressionLevel string

const (
	LevelDefault  CompressionLevel = "default"
	LevelPrepress CompressionLevel = "prepress"
	LevelPrinter  CompressionLevel = "printer"
	LevelEbook    CompressionLevel = "ebook"
	LevelScreen   CompressionLevel = "screen"
)

const DefaultCompressionLevel = LevelEbook

var levelsByPower = []CompressionLevel{
	LevelDefault,
	LevelPrepress,
	LevelPrinter,
	LevelEbook,
	LevelScreen,
}

// ParseCompressionLevel accepts level names and the numeric powers 0..4.
// An empty value yields DefaultCompressionLevel.
func ParseCompressionLevel(value string) (CompressionLevel, error) {
	if value == "" {
		return DefaultCompressionLevel, nil
	}

	for power, level := range levelsByPower {
		if value == string(level) || value == fmt.Sprint(power) {
			return level, nil
		}
	}

	return "", fmt.Errorf("unknown compression level %q", value)
}

func CompressionLevels() []CompressionLevel {
	return append([]CompressionLevel(nil), levelsByPower...)
}
