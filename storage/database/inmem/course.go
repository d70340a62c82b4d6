package inmemdb

import "github.com/huyanluanyuing/LMS/core/course"

type courseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	crs.ID = repo.db.pk
	repo.db.table[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) GetCourseByInviteCode(code string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, crs := range repo.db.table {
		if crs.InviteCode == code {
			return *crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) QueryCoursesByTeacherID(teacherID int) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0)
	for _, crs := range repo.db.table {
		if crs.TeacherID == teacherID {
			courses = append(courses, *crs)
		}
	}
	return courses, nil
}

func (repo *courseRepository) QueryCoursesByStudentID(studentID int) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0)
	for courseID, students := range repo.db.enrollment {
		if students[studentID] {
			if crs, ok := repo.db.table[courseID]; ok {
				courses = append(courses, *crs)
			}
		}
	}
	return courses, nil
}

func (repo *courseRepository) AddStudent(courseID, studentID int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[courseID]; !ok {
		return course.ErrNotFound
	}
	students, ok := repo.db.enrollment[courseID]
	if !ok {
		students = make(map[int]bool)
		repo.db.enrollment[courseID] = students
	}
	students[studentID] = true
	return nil
}
