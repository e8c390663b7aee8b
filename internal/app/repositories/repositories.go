package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	StudentRepository       *StudentRepository
	TeacherRepository       *TeacherRepository
	CompanyRepository       *CompanyRepository
	BatchRepository         *BatchRepository
	ParticipationRepository *ParticipationRepository
	AssignmentRepository    *AssignmentRepository
	ReportRepository        *ReportRepository
	ImportRunRepository     *ImportRunRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		StudentRepository:       NewStudentRepository(db),
		TeacherRepository:       NewTeacherRepository(db),
		CompanyRepository:       NewCompanyRepository(db),
		BatchRepository:         NewBatchRepository(db),
		ParticipationRepository: NewParticipationRepository(db),
		AssignmentRepository:    NewAssignmentRepository(db),
		ReportRepository:        NewReportRepository(db),
		ImportRunRepository:     NewImportRunRepository(db),
	}
}
