package main

import (
	"errors"
	"io/fs"

	"github.com/xxxsen/zonegen/internal/generator"
	"github.com/xxxsen/zonegen/internal/hostconf"
)

const (
	hintRecordMismatch   = "[!] Make sure HOST and DOMAIN entries are 1:1 in the 'host.conf'"
	hintMalformedAddress = "[!] Reverse zone generation met a HOST value it could not split into octets, this should never happen with a valid 'host.conf'"
	hintNoZonePath       = "[!] Declare both ZONE_FILE: and REVERSE_ZONE_FILE: in the 'host.conf'"
	hintMissingFile      = "[!] A required file is missing: 'host.conf', 'header.conf' or a declared zone file to back up"
)

// operatorHint picks the message printed after a failed run.
func operatorHint(err error) string {
	var mismatch *generator.RecordMismatchError
	var malformed *generator.MalformedAddressError
	switch {
	case errors.As(err, &mismatch):
		return hintRecordMismatch
	case errors.As(err, &malformed):
		return hintMalformedAddress
	case errors.Is(err, hostconf.ErrNoZoneFile), errors.Is(err, hostconf.ErrNoReverseZoneFile):
		return hintNoZonePath
	case errors.Is(err, fs.ErrNotExist):
		return hintMissingFile
	}
	return ""
}
