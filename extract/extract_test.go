package extract

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melito/stonehm/registry"
)

func parseSource(t *testing.T, src string) *ast.File {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	require.NoError(t, err)
	return file
}

func TestPopulateFileHandler(t *testing.T) {
	src := `package demo

// Get user by ID
//
// Retrieves user information.
//
// # Parameters
// - id (path): The user ID
//
// # Responses
// - 200: The user
// - 404: User not found
//
//stonehm:handler users
func GetUser(id Path[uint32]) Result[Json[UserResponse], ApiError] {
	return Result[Json[UserResponse], ApiError]{}
}
`
	handlers := registry.New()
	types := registry.NewTypeRegistry()
	require.NoError(t, PopulateFile(parseSource(t, src), handlers, types))

	doc := handlers.Lookup("GetUser")
	assert.Equal(t, "Get user by ID", doc.Summary)
	assert.Equal(t, "Retrieves user information.", doc.Description)
	assert.Equal(t, []string{"users"}, doc.Tags)
	assert.Equal(t, "UserResponse", doc.ResponseType)
	assert.Equal(t, "ApiError", doc.ErrorType)
	require.Len(t, doc.Parameters, 1)
	assert.Equal(t, "id", doc.Parameters[0].Name)
	require.Len(t, doc.Responses, 2)
	assert.Equal(t, 404, doc.Responses[1].Status)
}

func TestPopulateFileRequestBody(t *testing.T) {
	src := `package demo

// Create user
//
//stonehm:handler
func CreateUser(body Json[CreateUserRequest]) Json[UserResponse] {
	return Json[UserResponse]{}
}
`
	handlers := registry.New()
	require.NoError(t, PopulateFile(parseSource(t, src), handlers, registry.NewTypeRegistry()))

	doc := handlers.Lookup("CreateUser")
	assert.Equal(t, "CreateUserRequest", doc.RequestBodyType)
	assert.Equal(t, "UserResponse", doc.ResponseType)
	assert.Empty(t, doc.ErrorType)
	assert.Empty(t, doc.Tags)
}

func TestPopulateFileTwoValueReturn(t *testing.T) {
	src := `package demo

// Update user
//
//stonehm:handler
func UpdateUser(body Json[UpdateRequest]) (Json[UserResponse], ApiError) {
	return Json[UserResponse]{}, ApiError{}
}

// Delete user
//
//stonehm:handler
func DeleteUser() (Json[UserResponse], error) {
	return Json[UserResponse]{}, nil
}
`
	handlers := registry.New()
	require.NoError(t, PopulateFile(parseSource(t, src), handlers, registry.NewTypeRegistry()))

	update := handlers.Lookup("UpdateUser")
	assert.Equal(t, "UserResponse", update.ResponseType)
	assert.Equal(t, "ApiError", update.ErrorType)

	// a builtin error result carries no documentable payload
	del := handlers.Lookup("DeleteUser")
	assert.Equal(t, "UserResponse", del.ResponseType)
	assert.Empty(t, del.ErrorType)
}

func TestPopulateFileSkipsUnmarkedFunctions(t *testing.T) {
	src := `package demo

// Helper does something internal.
func Helper() {}
`
	handlers := registry.New()
	require.NoError(t, PopulateFile(parseSource(t, src), handlers, registry.NewTypeRegistry()))
	assert.Equal(t, 0, handlers.Len())
}

func TestPopulateFileStructType(t *testing.T) {
	src := `package demo

// UserResponse is the user payload.
//
//stonehm:schema
type UserResponse struct {
	ID      uint32  ` + "`json:\"id\"`" + `
	Name    string  ` + "`json:\"name\"`" + `
	Active  bool    ` + "`json:\"active\"`" + `
	Age     *uint32 ` + "`json:\"age,omitempty\"`" + `
	Ignored string  ` + "`json:\"-\"`" + `
	hidden  string
}
`
	types := registry.NewTypeRegistry()
	require.NoError(t, PopulateFile(parseSource(t, src), registry.New(), types))

	def, ok := types.Lookup("UserResponse")
	require.True(t, ok)
	assert.Equal(t, registry.KindStruct, def.Kind)
	require.Len(t, def.Fields, 4)
	assert.Equal(t, registry.Field{Name: "id", Type: "uint32"}, def.Fields[0])
	assert.Equal(t, registry.Field{Name: "name", Type: "string"}, def.Fields[1])
	assert.Equal(t, registry.Field{Name: "active", Type: "bool"}, def.Fields[2])
	assert.Equal(t, registry.Field{Name: "age", Type: "*uint32"}, def.Fields[3])
}

func TestPopulateFileOpaqueType(t *testing.T) {
	src := `package demo

//stonehm:schema
type Status int

type Unmarked struct {
	Field string
}
`
	types := registry.NewTypeRegistry()
	require.NoError(t, PopulateFile(parseSource(t, src), registry.New(), types))

	def, ok := types.Lookup("Status")
	require.True(t, ok)
	assert.Equal(t, registry.KindOpaque, def.Kind)

	_, ok = types.Lookup("Unmarked")
	assert.False(t, ok)
}

func TestPopulateFileUntaggedFieldsUseGoNames(t *testing.T) {
	src := `package demo

//stonehm:schema
type Plain struct {
	Count int
}
`
	types := registry.NewTypeRegistry()
	require.NoError(t, PopulateFile(parseSource(t, src), registry.New(), types))

	def, ok := types.Lookup("Plain")
	require.True(t, ok)
	require.Len(t, def.Fields, 1)
	assert.Equal(t, registry.Field{Name: "Count", Type: "int"}, def.Fields[0])
}

func TestPopulateFileDuplicateHandler(t *testing.T) {
	src := `package demo

//stonehm:handler
func Dup() {}
`
	handlers := registry.New()
	file := parseSource(t, src)
	require.NoError(t, PopulateFile(file, handlers, registry.NewTypeRegistry()))
	err := PopulateFile(file, handlers, registry.NewTypeRegistry())
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicateHandler)
}

func TestDirectiveParsing(t *testing.T) {
	src := `package demo

//stonehm:handlers
func NotAHandler() {}

//stonehm:handler admin users
func Tagged() {}
`
	handlers := registry.New()
	require.NoError(t, PopulateFile(parseSource(t, src), handlers, registry.NewTypeRegistry()))

	assert.Equal(t, 1, handlers.Len())
	doc := handlers.Lookup("Tagged")
	assert.Equal(t, []string{"admin", "users"}, doc.Tags)
}
