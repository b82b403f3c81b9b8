package services

import (
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/platform/config"
)

// Repositories groups the persistence facades the services depend on.
type Repositories struct {
	User        portsrepo.UserRepositoryFacade
	Transaction portsrepo.TransactionRepositoryFacade
	Note        portsrepo.NoteRepositoryFacade
}

// NewServiceContainer wires up all application services with their
// dependencies.
func NewServiceContainer(cfg *config.Config, repos Repositories) *portssvc.ServiceContainer {
	userService := NewUserService(repos.User)
	tokenService := NewTokenService(cfg, repos.User)
	authService := NewAuthService(userService, tokenService, repos.User)
	oauthService := NewOAuthService(cfg, userService, tokenService)
	transactionService := NewTransactionService(repos.Transaction)
	noteService := NewNoteService(repos.Note)
	dashboardService := NewDashboardService(repos.Transaction)

	return &portssvc.ServiceContainer{
		User:        userService,
		Transaction: transactionService,
		Note:        noteService,
		Dashboard:   dashboardService,
		Auth:        authService,
		Token:       tokenService,
		OAuth:       oauthService,
	}
}
