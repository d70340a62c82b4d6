package inmemdb

import "github.com/huyanluanyuing/LMS/core/assignment"

type assignmentRepository struct {
	db *assignmentTable
}

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	asg.ID = repo.db.pk
	repo.db.table[asg.ID] = &asg
	return asg, nil
}

func (repo *assignmentRepository) GetAssignmentByID(id int) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if asg, ok := repo.db.table[id]; ok {
		return *asg, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) QueryAssignmentsByCourseID(courseID int) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	assignments := make([]assignment.Assignment, 0)
	for _, asg := range repo.db.table {
		if asg.CourseID == courseID {
			assignments = append(assignments, *asg)
		}
	}
	return assignments, nil
}
