package abi

// The reference layouts below are the fixed transmission format of the
// boundary. Offsets and totals are part of the ABI:
//
//	job-info      32 B, align 8: status u32@0, doc_type u32@4,
//	              created_at u64@8, doc_size u64@16, name_ptr u64@24
//	server-config  4 B, align 2: port u16@0, require_tls u8@2, 1 B pad
//	printer-info  32 B, align 8: name_ptr u64@0, uri_ptr u64@8,
//	              ip_ptr u64@16, port u16@24, color/duplex/tls u8@26/27/28,
//	              3 B pad
//	audit-entry   40 B, align 8: timestamp u64@0, entry_id u64@8,
//	              action_ptr u64@16, doc_hash_ptr u64@24, success u8@32,
//	              7 B pad

// JobInfoLayout describes the 32-byte job-info record.
var JobInfoLayout = mustLayout("job_info",
	Field{Name: "status", Size: 4, Align: 4},
	Field{Name: "doc_type", Size: 4, Align: 4},
	Field{Name: "created_at", Size: 8, Align: 8},
	Field{Name: "doc_size", Size: 8, Align: 8},
	Field{Name: "name_ptr", Size: 8, Align: 8, Pointer: true},
)

// ServerConfigLayout describes the 4-byte server-config record.
var ServerConfigLayout = mustLayout("server_config",
	Field{Name: "port", Size: 2, Align: 2},
	Field{Name: "require_tls", Size: 1, Align: 1},
)

// PrinterInfoLayout describes the 32-byte printer-info record.
var PrinterInfoLayout = mustLayout("printer_info",
	Field{Name: "name_ptr", Size: 8, Align: 8, Pointer: true},
	Field{Name: "uri_ptr", Size: 8, Align: 8, Pointer: true},
	Field{Name: "ip_ptr", Size: 8, Align: 8, Pointer: true},
	Field{Name: "port", Size: 2, Align: 2},
	Field{Name: "supports_color", Size: 1, Align: 1},
	Field{Name: "supports_duplex", Size: 1, Align: 1},
	Field{Name: "supports_tls", Size: 1, Align: 1},
)

// AuditEntryLayout describes the 40-byte audit-entry record.
var AuditEntryLayout = mustLayout("audit_entry",
	Field{Name: "timestamp", Size: 8, Align: 8},
	Field{Name: "entry_id", Size: 8, Align: 8},
	Field{Name: "action_ptr", Size: 8, Align: 8, Pointer: true},
	Field{Name: "doc_hash_ptr", Size: 8, Align: 8, Pointer: true},
	Field{Name: "success", Size: 1, Align: 1},
)

// ReferenceLayouts returns the boundary's transmission formats.
func ReferenceLayouts() []*StructLayout {
	return []*StructLayout{JobInfoLayout, ServerConfigLayout, PrinterInfoLayout, AuditEntryLayout}
}
