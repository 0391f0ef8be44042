//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeminiFlagsPolicyDefaultsToSection(t *testing.T) {
	require.Equal(t, linkPolicySection, GeminiFlags(0).policy())
}

func TestGeminiFlagsPolicyInline(t *testing.T) {
	require.Equal(t, linkPolicyInline, GeminiLinkIn.policy())
}

func TestGeminiFlagsPolicyEnd(t *testing.T) {
	require.Equal(t, linkPolicyEnd, GeminiLinkEnd.policy())
}

func TestGeminiFlagsPolicyEndWinsOverInOnConflict(t *testing.T) {
	f := (GeminiLinkIn | GeminiLinkEnd).normalize()
	require.Equal(t, linkPolicyEnd, f.policy())
}

func TestHTMLFlagsAreIndependentBits(t *testing.T) {
	f := HTMLStandalone | HTMLOwasp
	require.NotZero(t, f&HTMLStandalone)
	require.NotZero(t, f&HTMLOwasp)
	require.Zero(t, f&HTMLSkipHTML)
}
