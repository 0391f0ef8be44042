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
	"regexp"
	"strings"
)

var rcsDateRE = regexp.MustCompile(`\$Date:\s*(\d{4})[/-](\d{2})[/-](\d{2})`)
var rcsAuthorRE = regexp.MustCompile(`\$Author:\s*(\S+)\s*\$`)

// rcsdate2str extracts a YYYY-MM-DD date from an RCS/CVS-style
// "$Date: YYYY/MM/DD HH:MM:SS$" keyword string. It returns "" if the
// string doesn't match, in which case the caller falls back to the
// supplied date unchanged (graceful degradation per spec.md §7).
func rcsdate2str(s string) string {
	m := rcsDateRE.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// rcsauthor2str extracts the username from an RCS "$Author: name $"
// keyword string, or "" if it doesn't match.
func rcsauthor2str(s string) string {
	m := rcsAuthorRE.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// date2str canonicalizes a user-supplied date value. lowdown's
// date2str mostly passes its input through after trimming; there is no
// parser mandated by spec.md beyond "canonicalize", so this trims
// surrounding whitespace and collapses internal runs of whitespace,
// which is the only normalization both html.c's and term.c's callers
// actually depend on.
func date2str(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// hbufShortlink elides the middle path components of a URL once its
// length exceeds threshold, producing "scheme://host/.../tail". Inputs
// that don't parse as scheme://host/... or that are already short are
// copied through unchanged.
func hbufShortlink(url string, threshold int) string {
	if len(url) <= threshold {
		return url
	}
	schemeIdx := strings.Index(url, "://")
	if schemeIdx < 0 {
		return url
	}
	scheme := url[:schemeIdx]
	rest := url[schemeIdx+3:]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return url
	}
	host := rest[:slash]
	path := rest[slash:]
	lastSlash := strings.LastIndex(path, "/")
	if lastSlash <= 0 {
		return url
	}
	tail := path[lastSlash+1:]
	if tail == "" {
		// trailing slash: use the last non-empty component instead
		trimmed := strings.TrimRight(path, "/")
		if i := strings.LastIndex(trimmed, "/"); i >= 0 {
			tail = trimmed[i+1:] + "/"
		}
	}
	return scheme + "://" + host + "/.../" + tail
}
