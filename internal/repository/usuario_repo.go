package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

var ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

// UsuarioRepository persists operator accounts in usuarios.json.
type UsuarioRepository interface {
	// Inicializar loads the store, seeding a default administrator when
	// the file does not exist yet. Must be called once at startup.
	Inicializar(adminPassword string) error
	FindByUsername(username string) (*model.Usuario, error)
	FindByID(id uuid.UUID) (*model.Usuario, error)
	Crear(u *model.Usuario) error
	Listar() ([]model.Usuario, error)
}

type usuarioRepo struct {
	mu   sync.Mutex
	path string
}

func NewUsuarioRepository(dir string) UsuarioRepository {
	return &usuarioRepo{path: filepath.Join(dir, "usuarios.json")}
}

func (r *usuarioRepo) Inicializar(adminPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var usuarios []model.Usuario
	ok, err := leerJSON(r.path, &usuarios)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generando hash del administrador: %w", err)
	}
	admin := model.Usuario{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		Nombre:       "Administrador",
		Rol:          "administrador",
		Activo:       true,
	}
	return r.escribir([]model.Usuario{admin})
}

func (r *usuarioRepo) FindByUsername(username string) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuarios, err := r.leer()
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		if usuarios[i].Username == username && usuarios[i].Activo {
			return &usuarios[i], nil
		}
	}
	return nil, ErrUsuarioNoEncontrado
}

func (r *usuarioRepo) FindByID(id uuid.UUID) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuarios, err := r.leer()
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		if usuarios[i].ID == id {
			return &usuarios[i], nil
		}
	}
	return nil, ErrUsuarioNoEncontrado
}

func (r *usuarioRepo) Crear(u *model.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuarios, err := r.leer()
	if err != nil {
		return err
	}
	for _, existente := range usuarios {
		if existente.Username == u.Username {
			return fmt.Errorf("el usuario %q ya existe", u.Username)
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return r.escribir(append(usuarios, *u))
}

func (r *usuarioRepo) Listar() ([]model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leer()
}

func (r *usuarioRepo) leer() ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if _, err := leerJSON(r.path, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) escribir(usuarios []model.Usuario) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creando directorio de datos: %w", err)
	}
	return escribirJSON(r.path, usuarios)
}
