package presswerk

import (
	"time"

	"github.com/google/uuid"

	"github.com/presswerk/presswerk-go/pkg/presswerk/abi"
)

// JobID uniquely identifies a print job.
type JobID struct {
	uuid.UUID
}

// NewJobID returns a fresh random job identifier.
func NewJobID() JobID {
	return JobID{uuid.New()}
}

// PrintJob is the job record shared with the queue collaborator. The status
// field is mutated only through Transition, which consults the state machine
// first.
type PrintJob struct {
	ID           JobID
	Status       JobStatus
	DocType      DocType
	DocumentName string
	// DocumentHash is the lowercase hex SHA-256 of the original bytes.
	DocumentHash string
	Settings     PrintSettings
	PrinterURI   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	TotalBytes   uint64
	ErrorMessage string
}

// NewPrintJob creates a job in the Pending state with default settings.
func NewPrintJob(docType DocType, name, documentHash string) *PrintJob {
	now := time.Now().UTC()
	return &PrintJob{
		ID:           NewJobID(),
		Status:       StatusPending,
		DocType:      docType,
		DocumentName: name,
		DocumentHash: documentHash,
		Settings:     DefaultPrintSettings(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Transition moves the job to a new status iff the change is legal. On
// ResultInvalidParam the job is left untouched.
func (j *PrintJob) Transition(to JobStatus) Result {
	if r := ValidateTransition(j.Status, to); r != ResultOk {
		return r
	}
	j.Status = to
	j.UpdatedAt = time.Now().UTC()
	return ResultOk
}

// InfoRecord builds the 32-byte boundary record for the job. The name
// pointer travels out of line and is filled in by the native caller, so it
// is zero here.
func (j *PrintJob) InfoRecord() abi.JobInfoRecord {
	return abi.JobInfoRecord{
		Status:    j.Status.Code(),
		DocType:   j.DocType.Code(),
		CreatedAt: uint64(j.CreatedAt.Unix()),
		DocSize:   j.TotalBytes,
	}
}
