package z80

import "errors"

// SnapshotMalformed is returned by Restore when the supplied State cannot
// represent a valid CPU state — currently, an interrupt mode outside 0..2.
// Restore leaves the CPU untouched when it returns this.
var SnapshotMalformed = errors.New("z80: malformed snapshot state")
