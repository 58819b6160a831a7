package model

// DeriveProgress recomputes an application's coarse status and dashboard step
// from its document checklist. The result only applies while the application
// is not in a terminal state; approved and rejected are set exclusively by an
// explicit admin decision and are never produced here.
func DeriveProgress(docs []Document) (status string, step int) {
	uploaded := 0
	approved := 0
	for _, d := range docs {
		if d.HasFile() {
			uploaded++
		}
		if d.VerificationStatus == VerificationApproved {
			approved++
		}
	}

	total := len(docs)
	switch {
	case total > 0 && uploaded == total && approved == total:
		return StatusUnderReview, 4
	case total > 0 && uploaded == total:
		return StatusSubmitted, 3
	case uploaded > 0:
		return StatusDraft, 2
	default:
		return StatusDraft, 1
	}
}
