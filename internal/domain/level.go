package domain

import (
	"fmt"
	"strings"
)

// ValidationLevelKey is the session property that selects the report level.
const ValidationLevelKey = "plugin.validation"

// ReportLevel controls whether and how collected issues are reported.
type ReportLevel int

const (
	// LevelNone mutes reporting. Issues are still collected.
	LevelNone ReportLevel = iota
	// LevelInline logs each issue as it is reported, once per occurrence.
	LevelInline
	// LevelBrief logs one line with the count of affected plugins.
	LevelBrief
	// LevelDefault lists the affected plugin keys.
	LevelDefault
	// LevelVerbose lists plugins with locations, modules and issues.
	LevelVerbose
)

// ReportLevels enumerates all levels in declaration order.
var ReportLevels = []ReportLevel{LevelNone, LevelInline, LevelBrief, LevelDefault, LevelVerbose}

var levelNames = map[ReportLevel]string{
	LevelNone:    "NONE",
	LevelInline:  "INLINE",
	LevelBrief:   "BRIEF",
	LevelDefault: "DEFAULT",
	LevelVerbose: "VERBOSE",
}

var levelDescriptions = map[ReportLevel]string{
	LevelNone:    "mute reporting; issues are still collected",
	LevelInline:  "log each issue as it happens, repeated per execution",
	LevelBrief:   "at end, one line with the count of plugins having issues",
	LevelDefault: "at end, list of plugins having issues",
	LevelVerbose: "at end, detailed report of plugins having issues",
}

func (l ReportLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("ReportLevel(%d)", int(l))
}

// Description is a one-line explanation of what the level prints.
func (l ReportLevel) Description() string {
	return levelDescriptions[l]
}

// ParseReportLevel matches s case-insensitively against the level names.
func ParseReportLevel(s string) (ReportLevel, error) {
	for _, l := range ReportLevels {
		if strings.EqualFold(s, levelNames[l]) {
			return l, nil
		}
	}
	return LevelDefault, fmt.Errorf("unknown report level %q", s)
}

// ReportLevelNames renders all level names as "[NONE, INLINE, ...]".
func ReportLevelNames() string {
	names := make([]string, len(ReportLevels))
	for i, l := range ReportLevels {
		names[i] = l.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
