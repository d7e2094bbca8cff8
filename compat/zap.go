package compat

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/rydor/log"
)

// ZapCore routes zap entries into a rydor/log.Logger.
// Fields are rendered as sorted key=value pairs appended to the message.
type ZapCore struct {
	logger   *log.Logger
	category string
	fields   []zapcore.Field
}

// NewZapCore creates a zapcore.Core writing to logger under category.
// The logger name of an entry, when set, replaces the category.
func NewZapCore(logger *log.Logger, category string) *ZapCore {
	if category == "" {
		category = "zap"
	}
	return &ZapCore{logger: logger, category: category}
}

// Enabled reports whether the mapped level passes the logger's filter
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return zapToLevel(lvl) >= c.logger.GetLevel()
}

// With returns a core carrying additional context fields
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds the core to the checked entry when the level is enabled
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields into a single record
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	category := c.category
	if ent.LoggerName != "" {
		category = ent.LoggerName
	}

	msg := ent.Message
	if kv := encodeFields(c.fields, fields); kv != "" {
		if msg == "" {
			msg = kv
		} else {
			msg = msg + " " + kv
		}
	}

	c.logger.Write(zapToLevel(ent.Level), category, msg)
	return nil
}

// Sync flushes pending records when the logger is running
func (c *ZapCore) Sync() error {
	if !c.logger.Running() {
		return nil
	}
	return c.logger.Flush(time.Second)
}

// zapToLevel maps zap levels onto logger levels, folding the panic levels into fatal
func zapToLevel(lvl zapcore.Level) log.Level {
	switch {
	case lvl < zapcore.InfoLevel:
		return log.LevelDebug
	case lvl == zapcore.InfoLevel:
		return log.LevelInfo
	case lvl == zapcore.WarnLevel:
		return log.LevelWarn
	case lvl == zapcore.ErrorLevel:
		return log.LevelError
	default:
		return log.LevelFatal
	}
}

// encodeFields renders context and entry fields as sorted key=value pairs
func encodeFields(groups ...[]zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, fields := range groups {
		for _, f := range fields {
			f.AddTo(enc)
		}
	}
	if len(enc.Fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", k, enc.Fields[k])
	}
	return sb.String()
}
