package abi

import (
	"encoding/binary"
	"fmt"
)

// Record codecs for the reference layouts. All multi-byte values are
// little-endian; padding bytes are always written as zero. Pointer-valued
// fields carry the raw 64-bit address a native caller supplied, or zero when
// the string data travels out of line.

// JobInfoRecord is the wire form of the 32-byte job-info layout.
type JobInfoRecord struct {
	Status    uint32
	DocType   uint32
	CreatedAt uint64
	DocSize   uint64
	NamePtr   uint64
}

// JobInfoSize is the encoded size of a JobInfoRecord.
const JobInfoSize = 32

// MarshalBinary encodes the record at its documented offsets.
func (r JobInfoRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, JobInfoSize)
	binary.LittleEndian.PutUint32(buf[0:], r.Status)
	binary.LittleEndian.PutUint32(buf[4:], r.DocType)
	binary.LittleEndian.PutUint64(buf[8:], r.CreatedAt)
	binary.LittleEndian.PutUint64(buf[16:], r.DocSize)
	binary.LittleEndian.PutUint64(buf[24:], r.NamePtr)
	return buf, nil
}

// UnmarshalBinary decodes a 32-byte job-info record.
func (r *JobInfoRecord) UnmarshalBinary(data []byte) error {
	if len(data) != JobInfoSize {
		return fmt.Errorf("abi: job_info record is %d bytes, want %d", len(data), JobInfoSize)
	}
	r.Status = binary.LittleEndian.Uint32(data[0:])
	r.DocType = binary.LittleEndian.Uint32(data[4:])
	r.CreatedAt = binary.LittleEndian.Uint64(data[8:])
	r.DocSize = binary.LittleEndian.Uint64(data[16:])
	r.NamePtr = binary.LittleEndian.Uint64(data[24:])
	return nil
}

// ServerConfigRecord is the wire form of the 4-byte server-config layout.
type ServerConfigRecord struct {
	Port       uint16
	RequireTLS bool
}

// ServerConfigSize is the encoded size of a ServerConfigRecord.
const ServerConfigSize = 4

// MarshalBinary encodes the record; byte 3 is natural padding and stays
// zero.
func (r ServerConfigRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, ServerConfigSize)
	binary.LittleEndian.PutUint16(buf[0:], r.Port)
	if r.RequireTLS {
		buf[2] = 1
	}
	return buf, nil
}

// UnmarshalBinary decodes a 4-byte server-config record. Any non-zero
// require_tls byte reads as true.
func (r *ServerConfigRecord) UnmarshalBinary(data []byte) error {
	if len(data) != ServerConfigSize {
		return fmt.Errorf("abi: server_config record is %d bytes, want %d", len(data), ServerConfigSize)
	}
	r.Port = binary.LittleEndian.Uint16(data[0:])
	r.RequireTLS = data[2] != 0
	return nil
}

// PrinterInfoRecord is the wire form of the 32-byte printer-info layout.
type PrinterInfoRecord struct {
	NamePtr        uint64
	URIPtr         uint64
	IPPtr          uint64
	Port           uint16
	SupportsColor  bool
	SupportsDuplex bool
	SupportsTLS    bool
}

// PrinterInfoSize is the encoded size of a PrinterInfoRecord.
const PrinterInfoSize = 32

// MarshalBinary encodes the record; bytes 29-31 are trailing padding.
func (r PrinterInfoRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PrinterInfoSize)
	binary.LittleEndian.PutUint64(buf[0:], r.NamePtr)
	binary.LittleEndian.PutUint64(buf[8:], r.URIPtr)
	binary.LittleEndian.PutUint64(buf[16:], r.IPPtr)
	binary.LittleEndian.PutUint16(buf[24:], r.Port)
	if r.SupportsColor {
		buf[26] = 1
	}
	if r.SupportsDuplex {
		buf[27] = 1
	}
	if r.SupportsTLS {
		buf[28] = 1
	}
	return buf, nil
}

// UnmarshalBinary decodes a 32-byte printer-info record.
func (r *PrinterInfoRecord) UnmarshalBinary(data []byte) error {
	if len(data) != PrinterInfoSize {
		return fmt.Errorf("abi: printer_info record is %d bytes, want %d", len(data), PrinterInfoSize)
	}
	r.NamePtr = binary.LittleEndian.Uint64(data[0:])
	r.URIPtr = binary.LittleEndian.Uint64(data[8:])
	r.IPPtr = binary.LittleEndian.Uint64(data[16:])
	r.Port = binary.LittleEndian.Uint16(data[24:])
	r.SupportsColor = data[26] != 0
	r.SupportsDuplex = data[27] != 0
	r.SupportsTLS = data[28] != 0
	return nil
}

// AuditEntryRecord is the wire form of the 40-byte audit-entry layout.
type AuditEntryRecord struct {
	Timestamp  uint64
	EntryID    uint64
	ActionPtr  uint64
	DocHashPtr uint64
	Success    bool
}

// AuditEntrySize is the encoded size of an AuditEntryRecord.
const AuditEntrySize = 40

// MarshalBinary encodes the record; bytes 33-39 are trailing padding.
func (r AuditEntryRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, AuditEntrySize)
	binary.LittleEndian.PutUint64(buf[0:], r.Timestamp)
	binary.LittleEndian.PutUint64(buf[8:], r.EntryID)
	binary.LittleEndian.PutUint64(buf[16:], r.ActionPtr)
	binary.LittleEndian.PutUint64(buf[24:], r.DocHashPtr)
	if r.Success {
		buf[32] = 1
	}
	return buf, nil
}

// UnmarshalBinary decodes a 40-byte audit-entry record.
func (r *AuditEntryRecord) UnmarshalBinary(data []byte) error {
	if len(data) != AuditEntrySize {
		return fmt.Errorf("abi: audit_entry record is %d bytes, want %d", len(data), AuditEntrySize)
	}
	r.Timestamp = binary.LittleEndian.Uint64(data[0:])
	r.EntryID = binary.LittleEndian.Uint64(data[8:])
	r.ActionPtr = binary.LittleEndian.Uint64(data[16:])
	r.DocHashPtr = binary.LittleEndian.Uint64(data[24:])
	r.Success = data[32] != 0
	return nil
}
