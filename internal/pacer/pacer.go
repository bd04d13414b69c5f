// Package pacer implements the two caller-driven execution strategies the
// 8080 core's hosts use to pace Step calls: a T-state budget per video
// frame (what an arcade cabinet host does) and a fixed instruction count
// per call (what a batch-oriented interpreter host does).
package pacer

import "time"

// FrameBudget paces execution by accumulating T-states until a frame's
// worth have elapsed, the way an arcade host ties CPU speed to a fixed
// video refresh rate.
type FrameBudget struct {
	ClockHz uint32
	FrameHz uint32
}

func (f FrameBudget) tstatesPerFrame() uint32 {
	return f.ClockHz / f.FrameHz
}

// RunFrame calls step repeatedly, accumulating its returned T-state
// counts, until at least one frame's worth have been spent. It returns
// the total T-states actually consumed (which can overshoot the budget,
// since step always completes a full instruction or interrupt service).
func (f FrameBudget) RunFrame(step func() uint8) uint32 {
	var spent uint32
	budget := f.tstatesPerFrame()
	for spent < budget {
		spent += uint32(step())
	}
	return spent
}

// RunRealtime calls RunFrame once per wall-clock frame interval for the
// given number of frames, sleeping out the remainder of any frame that
// finished early. This lets a host with no frame timer of its own (a
// headless diagnostic runner, say) still run at roughly FrameHz.
func (f FrameBudget) RunRealtime(step func() uint8, frames int) {
	interval := time.Second / time.Duration(f.FrameHz)
	for i := 0; i < frames; i++ {
		start := time.Now()
		f.RunFrame(step)
		if elapsed := time.Since(start); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
}

// FixedBatch paces execution by a fixed instruction count per call,
// rather than a T-state budget — what a host driving an interpreted
// program in lockstep batches does.
type FixedBatch struct {
	Instructions int
}

// Run calls step up to Instructions times, stopping early if halted
// reports true. It returns how many instructions actually ran and the
// total T-states they consumed.
func (b FixedBatch) Run(step func() uint8, halted func() bool) (executed int, cycles uint32) {
	for executed = 0; executed < b.Instructions; executed++ {
		if halted() {
			return executed, cycles
		}
		cycles += uint32(step())
	}
	return executed, cycles
}
