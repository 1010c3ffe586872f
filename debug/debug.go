// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Tagged diagnostic logging helper (zero-fmt)
//
// Purpose:
//   - Reports setup progress, warnings and failures on stderr, one tagged
//     line each: "<TAG>: <message>".
//   - Keeps stdout clean for the measurement table.
//
// Notes:
//   - Avoids fmt to keep the call sites cheap and predictable.
//   - Output routes through utils.PrintWarning so tests can capture it.
//
// ⚠️ Never invoke between the two timer reads of a trial.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "memlat/utils"

// DropError logs "<prefix>: <err>" or just "<prefix>" when err is nil.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		// Bare tag for traces such as GC state changes
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs "<prefix>: <message>".
// Used for cold-path progress: calibration, pinning, arena sizing.
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
