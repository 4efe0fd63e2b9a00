package ledger

import (
	"crypto/rand"
	"math/big"
)

// PNR alphabet excludes 0/O and 1/I to keep the code readable over the
// phone.
const pnrAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const pnrLength = 6

// NewPNR returns a short human-presentable booking reference. The
// historical "BG" prefix is kept; the suffix is drawn from crypto/rand
// rather than a timestamp so rapid repeated commits do not collide.
func NewPNR() string {
	out := make([]byte, pnrLength)
	max := big.NewInt(int64(len(pnrAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is
			// broken; fall back to a fixed character rather than panic.
			out[i] = pnrAlphabet[0]
			continue
		}
		out[i] = pnrAlphabet[n.Int64()]
	}
	return "BG" + string(out)
}
