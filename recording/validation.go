package recording

import (
	"context"
	"strings"

	"github.com/rs/xid"

	"github.com/sarchlab/popgen/hooking"
	"github.com/sarchlab/popgen/params"
)

// ValidationTable is the table validation outcomes are written to.
const ValidationTable = "validation"

// ValidationEntry is one row of the validation table.
type ValidationEntry struct {
	RunID            string
	Seq              int
	Model            string
	NumNeutral       int
	NumSelected      int
	NumRecombination int
	NumDemes         int
	PruneSelected    bool
	Valid            bool
	Error            string
}

// ValidationRecorder is a hook that records every validation it sees.
type ValidationRecorder struct {
	recorder DataRecorder
	runID    string
	seq      int
}

// NewValidationRecorder creates the validation table in the recorder and
// returns a hook writing to it. All rows written by the hook share a run ID.
func NewValidationRecorder(recorder DataRecorder) *ValidationRecorder {
	recorder.CreateTable(ValidationTable, ValidationEntry{})

	return &ValidationRecorder{
		recorder: recorder,
		runID:    xid.New().String(),
	}
}

// RunID returns the ID written with every row.
func (h *ValidationRecorder) RunID() string {
	return h.runID
}

// Func records the outcome of a validation.
func (h *ValidationRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != hooking.HookPosAfterValidate {
		return
	}

	p, ok := ctx.Item.(params.Params)
	if !ok {
		return
	}

	h.seq++

	entry := ValidationEntry{
		RunID:            h.runID,
		Seq:              h.seq,
		Model:            params.ModelKind(p),
		NumNeutral:       len(p.NeutralRegions()),
		NumSelected:      len(p.SelectedRegions()),
		NumRecombination: len(p.RecombinationRegions()),
		PruneSelected:    p.PruneSelected(),
		Valid:            true,
	}

	if d := p.Demography(); d != nil {
		entry.NumDemes = d.NumDemes()
	}

	if err, _ := ctx.Detail.(error); err != nil {
		entry.Valid = false
		entry.Error = err.Error()
	}

	h.recorder.InsertData(ValidationTable, entry)
}

// ValidationQuery selects a page of recorded validations.
type ValidationQuery struct {
	// FailedOnly keeps only the validations that returned an error.
	FailedOnly bool

	// RunID keeps only the validations of one run when not empty.
	RunID string

	Limit  int
	Offset int
}

// QueryValidations returns the matching validations ordered by run and
// sequence number, together with the number of matches before paging.
func QueryValidations(
	ctx context.Context,
	reader DataReader,
	q ValidationQuery,
) ([]ValidationEntry, int, error) {
	reader.MapTable(ValidationTable, ValidationEntry{})

	var (
		conds []string
		args  []any
	)

	if q.FailedOnly {
		conds = append(conds, "Valid = ?")
		args = append(args, false)
	}

	if q.RunID != "" {
		conds = append(conds, "RunID = ?")
		args = append(args, q.RunID)
	}

	results, total, err := reader.Query(ctx, ValidationTable, QueryParams{
		Where:   strings.Join(conds, " AND "),
		Args:    args,
		Limit:   q.Limit,
		Offset:  q.Offset,
		OrderBy: "RunID, Seq",
	})
	if err != nil {
		return nil, 0, err
	}

	entries := make([]ValidationEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, *r.(*ValidationEntry))
	}

	return entries, total, nil
}

// ReadValidations returns every recorded validation ordered by run and
// sequence number.
func ReadValidations(
	ctx context.Context,
	reader DataReader,
) ([]ValidationEntry, error) {
	entries, _, err := QueryValidations(ctx, reader, ValidationQuery{})

	return entries, err
}
