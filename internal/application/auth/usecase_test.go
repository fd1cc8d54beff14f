package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-pos/internal/application/auth"
	"github.com/tu-usuario/muebleria-pos/internal/application/dto"
	"github.com/tu-usuario/muebleria-pos/internal/domain"
	"github.com/tu-usuario/muebleria-pos/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/muebleria-pos/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // clave: username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func testUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "muebleria-pos-test",
	})
}

func TestRegisterUser_PrimerUsuarioSiempreGerente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	// Pide trabajador sin token, pero al ser el primero queda como gerente.
	out, err := uc.RegisterUser("", dto.RegisterRequest{
		Username: "fundadora",
		Password: "secreto123",
		Role:     entity.RoleTrabajador,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGerente, out.Role,
		"el primer usuario del sistema debe quedar como gerente")
	assert.NotEmpty(t, out.ID)
}

func TestRegisterUser_SoloGerentePuedeRegistrarDespuesDelPrimero(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)

	_, err := uc.RegisterUser("", dto.RegisterRequest{Username: "fundadora", Password: "secreto123"})
	require.NoError(t, err)

	// Sin actor o con actor trabajador: prohibido.
	for _, actor := range []string{"", entity.RoleTrabajador} {
		_, err := uc.RegisterUser(actor, dto.RegisterRequest{Username: "nuevo", Password: "clave123"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}

	// Un gerente sí puede; sin rol explícito queda como trabajador.
	out, err := uc.RegisterUser(entity.RoleGerente, dto.RegisterRequest{Username: "vendedor", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTrabajador, out.Role)
}

func TestRegisterUser_RolDesconocido_EsInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)
	_, err := uc.RegisterUser("", dto.RegisterRequest{Username: "fundadora", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(entity.RoleGerente, dto.RegisterRequest{
		Username: "x", Password: "clave123", Role: "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_UsernameOcupado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)
	_, err := uc.RegisterUser("", dto.RegisterRequest{Username: "fundadora", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(entity.RoleGerente, dto.RegisterRequest{Username: "fundadora", Password: "otra123"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_CredencialesVacias(t *testing.T) {
	uc := testUseCase(newFakeUserRepo())
	_, err := uc.RegisterUser("", dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser("", dto.RegisterRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas_EmiteTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)
	_, err := uc.RegisterUser("", dto.RegisterRequest{Username: "fundadora", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "fundadora", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "fundadora", out.User.Username)

	userID, username, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "fundadora", username)
	assert.Equal(t, entity.RoleGerente, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testUseCase(repo)
	_, err := uc.RegisterUser("", dto.RegisterRequest{Username: "fundadora", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "fundadora", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := testUseCase(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
