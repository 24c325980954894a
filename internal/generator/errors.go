package generator

import "fmt"

// RecordMismatchError reports HOST and DOMAIN lists of different length.
// Index is the first position without a partner.
type RecordMismatchError struct {
	Index   int
	Hosts   int
	Domains int
}

func (e *RecordMismatchError) Error() string {
	return fmt.Sprintf("no partner for record at index %d (hosts:%d, domains:%d), HOST and DOMAIN entries must be 1:1",
		e.Index, e.Hosts, e.Domains)
}

// MalformedAddressError reports a host value with fewer than three octets.
type MalformedAddressError struct {
	Host  string
	Value string
}

func (e *MalformedAddressError) Error() string {
	return fmt.Sprintf("host:%s has malformed address:%q, need at least 3 octets", e.Host, e.Value)
}
