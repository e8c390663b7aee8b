package services

import (
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/auth"
	"github.com/minhvu/internhub/internal/pkg/filestorage"
)

// Services holds all service instances
type Services struct {
	AuthService         *AuthService
	BatchService        *BatchService
	StudentService      *StudentService
	TeacherService      *TeacherService
	CompanyService      *CompanyService
	AssignmentService   *AssignmentService
	ReportService       *ReportService
	RosterImportService *RosterImportService
}

// NewServices wires all services over the shared repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage *filestorage.LocalStorage) *Services {
	rosterImportService := NewRosterImportService(
		repos.BatchRepository,
		repos.StudentRepository,
		repos.TeacherRepository,
		repos.CompanyRepository,
		repos.ParticipationRepository,
		repos.AssignmentRepository,
		repos.ImportRunRepository,
	)

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		BatchService:   NewBatchService(repos.BatchRepository, repos.ParticipationRepository, repos.ImportRunRepository),
		StudentService: NewStudentService(repos.StudentRepository),
		TeacherService: NewTeacherService(repos.TeacherRepository),
		CompanyService: NewCompanyService(repos.CompanyRepository),
		AssignmentService: NewAssignmentService(
			repos.AssignmentRepository,
			repos.StudentRepository,
			repos.CompanyRepository,
			repos.BatchRepository,
			rosterImportService,
		),
		ReportService:       NewReportService(repos.ReportRepository, repos.AssignmentRepository, storage),
		RosterImportService: rosterImportService,
	}
}
