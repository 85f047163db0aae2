// Package validation provides input validation for tool arguments.
package validation

import (
	"regexp"
	"strings"
)

// walletRegex validates wallet addresses: 0x followed by 40 hex characters.
// Purely syntactic; no checksum verification.
var walletRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// WalletPattern is the JSON-schema pattern advertised in the tool catalog.
const WalletPattern = `^0x[a-fA-F0-9]{40}$`

// networks is the closed set of chain identifiers the upstream accepts.
// "all" means no network filter.
var networks = []string{
	"all", "avalanche", "arbitrum", "bnb-chain", "ethereum",
	"fantom", "polygon", "optimism", "base", "gnosis",
}

// IsValidWalletAddress checks if a string is a syntactically valid wallet address.
func IsValidWalletAddress(addr string) bool {
	return walletRegex.MatchString(addr)
}

// SanitizeWallet normalizes a wallet address for upstream use.
func SanitizeWallet(addr string) string {
	addr = strings.TrimSpace(addr)
	addr = strings.ToLower(addr)

	// Ensure 0x prefix
	if !strings.HasPrefix(addr, "0x") && len(addr) == 40 {
		addr = "0x" + addr
	}

	return addr
}

// Networks returns the accepted network filter values, "all" first.
func Networks() []string {
	out := make([]string, len(networks))
	copy(out, networks)
	return out
}

// IsValidNetwork checks membership in the network enumeration.
func IsValidNetwork(n string) bool {
	for _, known := range networks {
		if n == known {
			return true
		}
	}
	return false
}
