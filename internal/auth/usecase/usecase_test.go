package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ministry-srv/internal/auth"
	"ministry-srv/internal/auth/repository"
	"ministry-srv/internal/auth/repository/mocks"
	"ministry-srv/internal/model"
	pkgAuth "ministry-srv/pkg/auth"
	pkgLog "ministry-srv/pkg/log"
	"ministry-srv/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

type mockDeps struct {
	repo  *mocks.Repository
	scope scope.Manager
}

func initUseCase(t *testing.T) (*usecase, mockDeps) {
	t.Helper()
	repo := mocks.NewRepository(t)
	sm, err := scope.New(scope.Config{
		SecretKey: testSecret,
		Issuer:    "ministry-srv",
		Clock:     func() time.Time { return testNow },
	})
	require.NoError(t, err)

	l := pkgLog.NewNop()
	uc := New(l, repo, sm, pkgAuth.NewSecurityLogger(l)).(*usecase)
	return uc, mockDeps{repo: repo, scope: sm}
}

var ana = model.Account{ID: "acc-1", Identifier: "1020304050", Name: "Ana Gómez", Active: true}

func assignmentOpts(kind model.RoleKind) repository.FindAssignmentOptions {
	return repository.FindAssignmentOptions{AccountID: ana.ID, Kind: kind}
}

func TestUseCase_Login(t *testing.T) {
	teacher := model.RoleAssignment{ID: "a1", AccountID: ana.ID, Kind: model.RoleTeacher, Current: true,
		Scoping: model.Scoping{Stage: "Discipulado", Day: "Domingo"}}
	contact := model.RoleAssignment{ID: "a2", AccountID: ana.ID, Kind: model.RoleContact, Current: true,
		Scoping: model.Scoping{Stage: "Semillas", Day: "Sábado", Week: 2}}
	director := model.RoleAssignment{ID: "a3", AccountID: ana.ID, Kind: model.RoleDirector, Current: true}
	admin := model.RoleAssignment{ID: "a4", AccountID: ana.ID, Kind: model.RoleAdministrator, Current: true}
	logistics := model.RoleAssignment{ID: "a5", AccountID: ana.ID, Kind: model.RoleLogistics, Current: true,
		Scoping: model.Scoping{Day: "Domingo"}}
	notFound := model.RoleAssignment{}

	type lookups map[model.RoleKind]model.RoleAssignment

	tests := []struct {
		name            string
		input           auth.LoginInput
		found           lookups
		wantRole        model.Role
		wantAssignments []model.AssignmentRef
		wantErr         error
	}{
		{
			name:  "director wins over everything",
			input: auth.LoginInput{Identifier: " 1020304050 "},
			found: lookups{model.RoleDirector: director, model.RoleContact: contact, model.RoleTeacher: teacher},
			wantRole: model.Director{},
			wantAssignments: []model.AssignmentRef{
				{Kind: model.RoleDirector},
				{Kind: model.RoleContact, Scoping: contact.Scoping},
				{Kind: model.RoleTeacher, Scoping: teacher.Scoping},
			},
		},
		{
			name:     "contact wins over teacher",
			input:    auth.LoginInput{Identifier: "1020304050"},
			found:    lookups{model.RoleContact: contact, model.RoleTeacher: teacher},
			wantRole: model.Contact{Stage: "Semillas", Day: "Sábado", Week: 2},
			wantAssignments: []model.AssignmentRef{
				{Kind: model.RoleContact, Scoping: contact.Scoping},
				{Kind: model.RoleTeacher, Scoping: teacher.Scoping},
			},
		},
		{
			name:     "only teacher",
			input:    auth.LoginInput{Identifier: "1020304050"},
			found:    lookups{model.RoleTeacher: teacher},
			wantRole: model.Teacher{Stage: "Discipulado", Day: "Domingo"},
		},
		{
			name:     "switch-only roles are listed",
			input:    auth.LoginInput{Identifier: "1020304050"},
			found:    lookups{model.RoleDirector: director, model.RoleAdministrator: admin, model.RoleLogistics: logistics},
			wantRole: model.Director{},
			wantAssignments: []model.AssignmentRef{
				{Kind: model.RoleDirector},
				{Kind: model.RoleAdministrator},
				{Kind: model.RoleLogistics, Scoping: logistics.Scoping},
			},
		},
		{
			name:     "teacher with logistics",
			input:    auth.LoginInput{Identifier: "1020304050"},
			found:    lookups{model.RoleTeacher: teacher, model.RoleLogistics: logistics},
			wantRole: model.Teacher{Stage: "Discipulado", Day: "Domingo"},
			wantAssignments: []model.AssignmentRef{
				{Kind: model.RoleTeacher, Scoping: teacher.Scoping},
				{Kind: model.RoleLogistics, Scoping: logistics.Scoping},
			},
		},
		{
			name:    "no current role",
			input:   auth.LoginInput{Identifier: "1020304050"},
			found:   lookups{},
			wantErr: auth.ErrNoRoleAssigned,
		},
		{
			name:    "only switch-only roles",
			input:   auth.LoginInput{Identifier: "1020304050"},
			found:   lookups{model.RoleAdministrator: admin},
			wantErr: auth.ErrNoRoleAssigned,
		},
		{
			name: "broken assignment is skipped",
			input: auth.LoginInput{Identifier: "1020304050"},
			found: lookups{
				model.RoleContact: {ID: "a9", AccountID: ana.ID, Kind: model.RoleContact, Current: true},
				model.RoleTeacher: teacher,
			},
			wantRole: model.Teacher{Stage: "Discipulado", Day: "Domingo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := initUseCase(t)
			deps.repo.On("GetAccount", mock.Anything, repository.GetAccountOptions{Identifier: "1020304050"}).
				Return(ana, nil).Once()
			for _, kind := range append(auth.LoginPrecedence(), auth.SwitchOnlyRoles()...) {
				a, ok := tt.found[kind]
				if ok {
					deps.repo.On("FindCurrentAssignment", mock.Anything, assignmentOpts(kind)).Return(a, nil).Once()
				} else {
					deps.repo.On("FindCurrentAssignment", mock.Anything, assignmentOpts(kind)).
						Return(notFound, repository.ErrNotFound).Once()
				}
			}

			out, err := uc.Login(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.Token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, out.Credential.Role)
			assert.Equal(t, tt.wantAssignments, out.Credential.Assignments)
			assert.Equal(t, ana.Identifier, out.Credential.Identifier)
			assert.Equal(t, ana.Name, out.Credential.Name)
			assert.Equal(t, model.RoleToHome(tt.wantRole), out.Redirect())
			assert.Equal(t, testNow.Add(model.SessionTTL).Unix(), out.Credential.ExpiresAt.Unix())

			verified, err := deps.scope.Verify(out.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, verified.Role)
		})
	}
}

func TestUseCase_Login_Rejections(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name    string
		input   auth.LoginInput
		mock    func(*mocks.Repository)
		wantErr error
	}{
		{
			name:    "blank identifier",
			input:   auth.LoginInput{Identifier: "   "},
			mock:    func(*mocks.Repository) {},
			wantErr: auth.ErrIdentifierRequired,
		},
		{
			name:  "unknown account",
			input: auth.LoginInput{Identifier: "99999"},
			mock: func(r *mocks.Repository) {
				r.On("GetAccount", mock.Anything, repository.GetAccountOptions{Identifier: "99999"}).
					Return(model.Account{}, repository.ErrNotFound).Once()
			},
			wantErr: auth.ErrAccountNotFound,
		},
		{
			name:  "inactive account",
			input: auth.LoginInput{Identifier: "luis"},
			mock: func(r *mocks.Repository) {
				r.On("GetAccount", mock.Anything, repository.GetAccountOptions{Identifier: "luis"}).
					Return(model.Account{ID: "acc-2", Identifier: "2030405060", Active: false}, nil).Once()
			},
			wantErr: auth.ErrAccountInactive,
		},
		{
			name:  "store failure on account",
			input: auth.LoginInput{Identifier: "ana"},
			mock: func(r *mocks.Repository) {
				r.On("GetAccount", mock.Anything, repository.GetAccountOptions{Identifier: "ana"}).
					Return(model.Account{}, dbErr).Once()
			},
			wantErr: dbErr,
		},
		{
			name:  "store failure on one lookup aborts",
			input: auth.LoginInput{Identifier: "ana"},
			mock: func(r *mocks.Repository) {
				r.On("GetAccount", mock.Anything, repository.GetAccountOptions{Identifier: "ana"}).
					Return(ana, nil).Once()
				r.On("FindCurrentAssignment", mock.Anything, assignmentOpts(model.RoleDirector)).
					Return(model.RoleAssignment{}, dbErr).Once()
				r.On("FindCurrentAssignment", mock.Anything, assignmentOpts(model.RoleContact)).
					Return(model.RoleAssignment{Kind: model.RoleContact}, repository.ErrNotFound).Maybe()
				r.On("FindCurrentAssignment", mock.Anything, assignmentOpts(model.RoleTeacher)).
					Return(model.RoleAssignment{Kind: model.RoleTeacher}, repository.ErrNotFound).Maybe()
				r.On("FindCurrentAssignment", mock.Anything, assignmentOpts(model.RoleAdministrator)).
					Return(model.RoleAssignment{Kind: model.RoleAdministrator}, repository.ErrNotFound).Maybe()
				r.On("FindCurrentAssignment", mock.Anything, assignmentOpts(model.RoleLogistics)).
					Return(model.RoleAssignment{Kind: model.RoleLogistics}, repository.ErrNotFound).Maybe()
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := initUseCase(t)
			tt.mock(deps.repo)

			out, err := uc.Login(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.Token)
		})
	}
}

func TestUseCase_SwitchRole(t *testing.T) {
	dbErr := errors.New("connection reset")
	current := model.Credential{
		Identifier: ana.Identifier,
		AccountID:  ana.ID,
		Name:       ana.Name,
		Role:       model.Contact{Stage: "Semillas", Day: "Sábado", Week: 2},
		Assignments: []model.AssignmentRef{
			{Kind: model.RoleContact, Scoping: model.Scoping{Stage: "Semillas", Day: "Sábado", Week: 2}},
			{Kind: model.RoleTeacher, Scoping: model.Scoping{Stage: "Discipulado", Day: "Domingo"}},
		},
	}

	tests := []struct {
		name     string
		cred     model.Credential
		input    auth.SwitchRoleInput
		mock     func(*mocks.Repository)
		wantRole model.Role
		wantErr  error
	}{
		{
			name:  "switch to current teacher assignment",
			cred:  current,
			input: auth.SwitchRoleInput{Kind: "Maestro", Scoping: model.Scoping{Stage: "Discipulado", Day: "Domingo", Week: 4}},
			mock: func(r *mocks.Repository) {
				r.On("FindCurrentAssignment", mock.Anything, repository.FindAssignmentOptions{
					AccountID: ana.ID,
					Kind:      model.RoleTeacher,
					Scoping:   &model.Scoping{Stage: "Discipulado", Day: "Domingo"},
				}).Return(model.RoleAssignment{ID: "a1", Kind: model.RoleTeacher, Current: true}, nil).Once()
			},
			wantRole: model.Teacher{Stage: "Discipulado", Day: "Domingo"},
		},
		{
			name:  "switch to director",
			cred:  current,
			input: auth.SwitchRoleInput{Kind: "director"},
			mock: func(r *mocks.Repository) {
				r.On("FindCurrentAssignment", mock.Anything, repository.FindAssignmentOptions{
					AccountID: ana.ID,
					Kind:      model.RoleDirector,
					Scoping:   &model.Scoping{},
				}).Return(model.RoleAssignment{ID: "a3", Kind: model.RoleDirector, Current: true}, nil).Once()
			},
			wantRole: model.Director{},
		},
		{
			name:  "assignment not current",
			cred:  current,
			input: auth.SwitchRoleInput{Kind: "contacto", Scoping: model.Scoping{Stage: "Semillas", Day: "Sábado", Week: 3}},
			mock: func(r *mocks.Repository) {
				r.On("FindCurrentAssignment", mock.Anything, mock.Anything).
					Return(model.RoleAssignment{}, repository.ErrNotFound).Once()
			},
			wantErr: auth.ErrAssignmentNotCurrent,
		},
		{
			name:    "unknown kind",
			cred:    current,
			input:   auth.SwitchRoleInput{Kind: "pastor"},
			mock:    func(*mocks.Repository) {},
			wantErr: auth.ErrInvalidRoleKind,
		},
		{
			name:    "pending is not selectable",
			cred:    current,
			input:   auth.SwitchRoleInput{Kind: "pendiente"},
			mock:    func(*mocks.Repository) {},
			wantErr: auth.ErrInvalidRoleKind,
		},
		{
			name:    "contact without week",
			cred:    current,
			input:   auth.SwitchRoleInput{Kind: "contacto", Scoping: model.Scoping{Stage: "Semillas", Day: "Sábado"}},
			mock:    func(*mocks.Repository) {},
			wantErr: auth.ErrScopingRequired,
		},
		{
			name:    "no credential",
			cred:    model.Credential{},
			input:   auth.SwitchRoleInput{Kind: "director"},
			mock:    func(*mocks.Repository) {},
			wantErr: auth.ErrUnauthenticated,
		},
		{
			name:  "store failure",
			cred:  current,
			input: auth.SwitchRoleInput{Kind: "director"},
			mock: func(r *mocks.Repository) {
				r.On("FindCurrentAssignment", mock.Anything, mock.Anything).
					Return(model.RoleAssignment{}, dbErr).Once()
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := initUseCase(t)
			tt.mock(deps.repo)

			out, err := uc.SwitchRole(context.Background(), tt.cred, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out.Token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, out.Credential.Role)
			assert.Equal(t, tt.cred.Assignments, out.Credential.Assignments)
			assert.Equal(t, tt.cred.Identifier, out.Credential.Identifier)

			verified, err := deps.scope.Verify(out.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, verified.Role)
			assert.Equal(t, model.RoleToHome(tt.wantRole), verified.Home())
		})
	}
}
