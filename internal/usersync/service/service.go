package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usersync/internal/usersync/model"
	"usersync/internal/usersync/repository"
	"usersync/internal/usersync/util"
)

// UserClient is the subset of the remote user API the service drives.
type UserClient interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID int) (*model.User, error)
	CreateUser(ctx context.Context, req model.UserCreate) (*model.User, error)
	UpdateUser(ctx context.Context, userID int, req model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, userID int) error
}

// ReportWriter persists the outcome files of a run.
type ReportWriter interface {
	WriteMissingEmails(users []model.User) (string, error)
	WriteUpdateErrors(logs []model.ErrorLog) (string, error)
}

type UserSyncService interface {
	GetUsersMissingEmail(ctx context.Context) ([]model.User, error)
	UpdateMissingEmails(ctx context.Context) ([]model.User, []model.ErrorLog, error)
	GetReconcileRuns(ctx context.Context, req model.GetReconcileRunsReq) (*model.GetReconcileRunsResp, error)
}

type Service struct {
	Client  UserClient
	Reports ReportWriter
	Runs    repository.RunRepository
}

func NewService(client UserClient, reports ReportWriter, runs repository.RunRepository) *Service {
	return &Service{Client: client, Reports: reports, Runs: runs}
}

// GetUsersMissingEmail fetches all users, keeps those without an email and always
// overwrites the missing-email report, even with an empty list.
func (s *Service) GetUsersMissingEmail(ctx context.Context) ([]model.User, error) {
	startedAt := time.Now()

	users, err := s.Client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	missing := filterMissingEmail(users)

	path, err := s.Reports.WriteMissingEmails(missing)
	if err != nil {
		return nil, fmt.Errorf("write missing email report: %w", err)
	}

	s.recordRun(ctx, &model.ReconcileRun{
		Operation:    model.OperationMissingEmailReport,
		TotalUsers:   len(users),
		MissingEmail: len(missing),
		ReportFile:   path,
		StartedAt:    startedAt,
	})

	return missing, nil
}

// UpdateMissingEmails assigns a derived email to every user lacking one. Users are
// processed one at a time in fetch order; the first holder of an address wins and
// later claimants are logged instead of updated. Only the initial fetch can fail
// the run, per-user failures become ErrorLog entries.
func (s *Service) UpdateMissingEmails(ctx context.Context) ([]model.User, []model.ErrorLog, error) {
	startedAt := time.Now()
	logger := util.GetLogger()

	users, err := s.Client.ListUsers(ctx)
	if err != nil {
		return nil, nil, err
	}

	owners := newEmailOwners(users)
	missing := filterMissingEmail(users)

	updated := []model.User{}
	errorLogs := []model.ErrorLog{}

	for _, user := range missing {
		email, err := s.assignEmail(ctx, user, owners)
		if err != nil {
			errorLogs = append(errorLogs, toErrorLog(user.ID, email, err))
			logger.Warn("email update skipped", "user_id", user.ID, "attempted_email", email, "error", err)
			continue
		}
		updated = append(updated, user.WithEmail(email))
	}

	run := &model.ReconcileRun{
		Operation:    model.OperationUpdateEmails,
		TotalUsers:   len(users),
		MissingEmail: len(missing),
		UpdatedCount: len(updated),
		ErrorCount:   len(errorLogs),
		Errors:       errorLogs,
		StartedAt:    startedAt,
	}
	for _, u := range updated {
		run.UpdatedUserIDs = append(run.UpdatedUserIDs, u.ID)
	}

	if len(errorLogs) > 0 {
		path, err := s.Reports.WriteUpdateErrors(errorLogs)
		if err != nil {
			logger.Error("failed to write email update errors", "error", err)
		}
		run.ReportFile = path
	}

	s.recordRun(ctx, run)

	logger.Info("email reconciliation finished",
		"total_users", len(users),
		"missing_email", len(missing),
		"updated", len(updated),
		"errors", len(errorLogs),
	)

	return updated, errorLogs, nil
}

// assignEmail derives, checks and requests the address for one user. The returned
// email is set whenever derivation happened, even on failure.
func (s *Service) assignEmail(ctx context.Context, user model.User, owners emailOwners) (string, error) {
	email := DeriveEmail(user.Firstname, user.Lastname, user.IsExternal)

	if ownerID, taken := owners.claimedByOther(email, user.ID); taken {
		return email, &ConflictError{Email: email, OwnerID: ownerID}
	}

	result, err := s.Client.UpdateUser(ctx, user.ID, model.UserUpdate{Email: &email})
	if err != nil {
		return email, err
	}
	if result == nil {
		return email, ErrNilUser
	}

	owners[email] = user.ID
	return email, nil
}

func (s *Service) GetReconcileRuns(ctx context.Context, req model.GetReconcileRunsReq) (*model.GetReconcileRunsResp, error) {
	runs, total, err := s.Runs.FindRuns(ctx, req)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []*model.ReconcileRun{}
	}

	return &model.GetReconcileRunsResp{
		Data:       runs,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}, nil
}

// recordRun stores run history; failures are logged only.
func (s *Service) recordRun(ctx context.Context, run *model.ReconcileRun) {
	if s.Runs == nil {
		return
	}
	if err := s.Runs.CreateRun(ctx, run); err != nil {
		util.GetLogger().Warn("failed to record reconcile run", "operation", run.Operation, "error", err)
	}
}

func filterMissingEmail(users []model.User) []model.User {
	missing := []model.User{}
	for _, u := range users {
		if !u.HasEmail() {
			missing = append(missing, u)
		}
	}
	return missing
}

func toErrorLog(userID int, attemptedEmail string, err error) model.ErrorLog {
	entry := model.ErrorLog{UserID: userID, Error: describeError(err)}
	if attemptedEmail != "" {
		entry.AttemptedEmail = &attemptedEmail
	}
	return entry
}

func describeError(err error) string {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Error()
	}
	return "An unexpected error occurred: " + err.Error()
}
