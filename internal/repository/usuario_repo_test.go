package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

func TestInicializarSiembraAdmin(t *testing.T) {
	repo := NewUsuarioRepository(t.TempDir())
	require.NoError(t, repo.Inicializar("1234"))

	admin, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "administrador", admin.Rol)
	assert.True(t, admin.Activo)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("1234")))

	// A second run must not overwrite existing accounts.
	require.NoError(t, repo.Inicializar("otra"))
	admin, err = repo.FindByUsername("admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("1234")))
}

func TestCrearYBuscarUsuarios(t *testing.T) {
	repo := NewUsuarioRepository(t.TempDir())
	require.NoError(t, repo.Inicializar("1234"))

	nuevo := &model.Usuario{
		Username:     "cajera1",
		PasswordHash: "hash",
		Nombre:       "Cajera",
		Rol:          "cajero",
		Activo:       true,
	}
	require.NoError(t, repo.Crear(nuevo))
	require.NotEqual(t, nuevo.ID.String(), "00000000-0000-0000-0000-000000000000")

	encontrado, err := repo.FindByID(nuevo.ID)
	require.NoError(t, err)
	assert.Equal(t, "cajera1", encontrado.Username)

	usuarios, err := repo.Listar()
	require.NoError(t, err)
	assert.Len(t, usuarios, 2)

	// Duplicate usernames are rejected.
	assert.Error(t, repo.Crear(&model.Usuario{Username: "cajera1"}))
}

func TestFindByUsernameIgnoraInactivos(t *testing.T) {
	repo := NewUsuarioRepository(t.TempDir())
	require.NoError(t, repo.Inicializar("1234"))
	require.NoError(t, repo.Crear(&model.Usuario{
		Username: "baja",
		Rol:      "cajero",
		Activo:   false,
	}))

	_, err := repo.FindByUsername("baja")
	assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
}
