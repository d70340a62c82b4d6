package inmemdb

import "github.com/huyanluanyuing/LMS/core/submission"

type submissionRepository struct {
	db *submissionTable
}

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

func (repo *submissionRepository) GetSubmissionByID(id int) (submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sub, ok := repo.db.table[id]; ok {
		return *sub, nil
	}
	return submission.Submission{}, submission.ErrNotFound
}

func (repo *submissionRepository) GetSubmissionByAssignmentAndStudent(assignmentID, studentID int) (submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sub := repo.find(assignmentID, studentID); sub != nil {
		return *sub, nil
	}
	return submission.Submission{}, submission.ErrNotFound
}

func (repo *submissionRepository) QuerySubmissionsByAssignmentID(assignmentID int) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subs := make([]submission.Submission, 0)
	for _, sub := range repo.db.table {
		if sub.AssignmentID == assignmentID {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

// UpsertSubmission holds the table lock across the whole lookup-mutate-write
// sequence so concurrent submits for the same pair serialize here.
func (repo *submissionRepository) UpsertSubmission(
	assignmentID, studentID int,
	mutate func(*submission.Submission),
) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if sub := repo.find(assignmentID, studentID); sub != nil {
		mutate(sub)
		return *sub, nil
	}

	sub := submission.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Status:       submission.StatusPending,
	}
	mutate(&sub)
	repo.db.pk++
	sub.ID = repo.db.pk
	repo.db.table[sub.ID] = &sub
	return sub, nil
}

func (repo *submissionRepository) UpdateSubmission(sub submission.Submission) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[sub.ID]; !ok {
		return submission.Submission{}, submission.ErrNotFound
	}
	repo.db.table[sub.ID] = &sub
	return sub, nil
}

// find must be called with the table lock held.
func (repo *submissionRepository) find(assignmentID, studentID int) *submission.Submission {
	for _, sub := range repo.db.table {
		if sub.AssignmentID == assignmentID && sub.StudentID == studentID {
			return sub
		}
	}
	return nil
}
