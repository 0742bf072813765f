package voxel

import (
	"fmt"
	"time"
)

// LogCategory classifies a message logged through a BuildContext.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

// TimerLabel identifies one of the performance timers a BuildContext tracks.
type TimerLabel int

const (
	// TimerRasterizeTriangles times RasterizeTriangle and its batch variants.
	TimerRasterizeTriangles TimerLabel = iota
	// TimerFilterLowObstacles times FilterLowHangingWalkableObstacles.
	TimerFilterLowObstacles
	// TimerFilterWalkableHeight times FilterWalkableLowHeightSpans.
	TimerFilterWalkableHeight
	// TimerFilterLedgeSpans times FilterLedgeSpans.
	TimerFilterLedgeSpans

	maxTimers
)

const maxMessages = 1000

// BuildContext provides optional logging and performance tracking for the
// voxelization and filter operations in this package. It is not a general
// purpose logger: it accumulates an in-memory log and per-operation timers
// so that a caller driving a full rasterize-then-filter pipeline can print
// a build-time breakdown afterwards.
//
// A nil *BuildContext is valid and behaves as if logging and timing were
// disabled; every exported method is nil-receiver safe.
type BuildContext struct {
	logEnabled   bool
	timerEnabled bool

	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int
}

// NewBuildContext creates a BuildContext with logging and timing enabled or
// disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{logEnabled: state, timerEnabled: state}
}

func (ctx *BuildContext) log(category LogCategory, format string, v ...interface{}) {
	if ctx == nil || !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	var prefix string
	switch category {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	ctx.messages[ctx.numMessages] = prefix + fmt.Sprintf(format, v...)
	ctx.numMessages++
}

// Progressf logs a progress message.
func (ctx *BuildContext) Progressf(format string, v ...interface{}) { ctx.log(LogProgress, format, v...) }

// Warningf logs a warning message. Rasterization uses this channel when it
// drops a zero-thickness span: the span is dropped and a warning is
// recorded here, rasterization continues.
func (ctx *BuildContext) Warningf(format string, v ...interface{}) { ctx.log(LogWarning, format, v...) }

// Errorf logs an error message.
func (ctx *BuildContext) Errorf(format string, v ...interface{}) { ctx.log(LogError, format, v...) }

// LogCount returns the number of messages recorded so far.
func (ctx *BuildContext) LogCount() int {
	if ctx == nil {
		return 0
	}
	return ctx.numMessages
}

// LogText returns the i-th recorded message.
func (ctx *BuildContext) LogText(i int) string {
	if ctx == nil {
		return ""
	}
	return ctx.messages[i]
}

// DumpLog prints the header followed by every recorded message.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	if ctx == nil {
		return
	}
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// StartTimer starts the named timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.startTime[label] = time.Now()
}

// StopTimer stops the named timer, accumulating the elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total accumulated duration of the named timer.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil || !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
