package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/service"
	"todo/internal/testutil"
)

// runCommand is a helper to run a command with FakeService and scripted input.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, input string) (stdout string, err error) {
	t.Helper()

	var outBuf bytes.Buffer
	in := console.NewReader(strings.NewReader(input))

	err = cmd.Run(context.Background(), &config.Config{}, svc, in, &outBuf)
	return outBuf.String(), err
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.AddCmd{}, svc, "  Buy milk \n2%, organic\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n--- Add New Task ---\n" +
		"Enter task title (required): " +
		"Enter task description (optional, press Enter to skip): " +
		"Task added successfully with ID: 1\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	task, ok := svc.Task(1)
	if !ok {
		t.Fatal("expected task 1 to exist")
	}
	want := service.Task{ID: 1, Title: "Buy milk", Description: "2%, organic"}
	if task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}
}

func TestAddCommand_SkipDescription(t *testing.T) {
	svc := testutil.NewFakeService()

	if _, err := runCommand(t, &commands.AddCmd{}, svc, "Walk dog\n\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task, _ := svc.Task(1)
	if task.HasDescription() {
		t.Errorf("expected no description, got %q", task.Description)
	}
}

func TestAddCommand_EmptyTitle(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.AddCmd{}, svc, "   \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(stdout, "Error: Title cannot be empty!\n") {
		t.Errorf("expected empty title error, got %q", stdout)
	}
	if strings.Contains(stdout, "description") {
		t.Errorf("description must not be prompted after an empty title, got %q", stdout)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no service calls, got %v", svc.Calls)
	}

	// The failed attempt did not consume an identifier.
	if id := svc.AddTask("next", ""); id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddErr = errors.New("store unavailable")

	stdout, err := runCommand(t, &commands.AddCmd{}, svc, "Buy milk\n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: store unavailable\n") {
		t.Errorf("expected backend error, got %q", stdout)
	}
}

func TestAddCommand_EndOfInput(t *testing.T) {
	svc := testutil.NewFakeService()

	_, err := runCommand(t, &commands.AddCmd{}, svc, "Buy milk\n")
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no service calls, got %v", svc.Calls)
	}
}

// Tests for list command
func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n--- All Tasks ---\nNo tasks yet\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_WithTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "2%, organic")
	svc.AddTask("Buy eggs", "")
	svc.AddTask("Buy bread", "")
	svc.ToggleCompleted(context.Background(), 3)
	svc.Delete(context.Background(), 2)

	stdout, err := runCommand(t, &commands.ListCmd{}, svc, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n--- All Tasks ---\n" +
		"ID: 1 | ☐ Pending | Title: Buy milk\n" +
		"   Description: 2%, organic\n" +
		"ID: 3 | ✓ Done | Title: Buy bread\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for update command
func TestUpdateCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, "1\nBuy oat milk\nbarista\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n--- Update Task ---\n" +
		"Enter task ID to update: " +
		"Current task: ID: 1 | ☐ Pending | Title: Buy milk\n" +
		"Enter new title (current: 'Buy milk', press Enter to keep current): " +
		"Enter new description (current: 'None', press Enter to keep current): " +
		"Task 1 updated successfully!\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	task, _ := svc.Task(1)
	want := service.Task{ID: 1, Title: "Buy oat milk", Description: "barista"}
	if task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}
}

func TestUpdateCommand_BlankKeepsCurrent(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "2%")

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, "1\n   \n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "(current: '2%', press Enter to keep current)") {
		t.Errorf("expected current description in prompt, got %q", stdout)
	}
	if !strings.HasSuffix(stdout, "Task 1 updated successfully!\n") {
		t.Errorf("expected success, got %q", stdout)
	}

	task, _ := svc.Task(1)
	want := service.Task{ID: 1, Title: "Buy milk", Description: "2%"}
	if task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}
}

func TestUpdateCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, "9\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n--- Update Task ---\n" +
		"Enter task ID to update: " +
		"Error: Task with ID 9 does not exist!\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestUpdateCommand_InvalidID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, "one\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: Please enter a valid task ID (number)!\n") {
		t.Errorf("expected invalid id error, got %q", stdout)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("invalid input must not reach the service, got %v", svc.Calls)
	}
}

func TestUpdateCommand_BackendRejectsTitle(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")
	svc.UpdateErr = service.ErrInvalidTitle

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, "1\nnew\n\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: Title cannot be empty!\n") {
		t.Errorf("expected title error, got %q", stdout)
	}
}

func TestUpdateCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")
	svc.GetErr = errors.New("store unavailable")

	stdout, err := runCommand(t, &commands.UpdateCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: store unavailable\n") {
		t.Errorf("expected backend error, got %q", stdout)
	}
	if strings.Contains(stdout, "Current task") {
		t.Errorf("expected no further prompts, got %q", stdout)
	}
}

// Tests for delete command
func TestDeleteCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	stdout, err := runCommand(t, &commands.DeleteCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n--- Delete Task ---\nEnter task ID to delete: Task 1 deleted successfully!\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if _, ok := svc.Task(1); ok {
		t.Error("expected task 1 to be deleted")
	}
	if id := svc.AddTask("next", ""); id != 2 {
		t.Errorf("expected id 2 after delete, got %d", id)
	}
}

func TestDeleteCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.DeleteCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: Task with ID 1 does not exist!\n") {
		t.Errorf("expected not found error, got %q", stdout)
	}
}

func TestDeleteCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")
	svc.DeleteErr = errors.New("store unavailable")

	stdout, err := runCommand(t, &commands.DeleteCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: store unavailable\n") {
		t.Errorf("expected backend error, got %q", stdout)
	}
	if _, ok := svc.Task(1); !ok {
		t.Error("expected task 1 to survive a failed delete")
	}
}

// Tests for toggle command
func TestToggleCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")

	stdout, err := runCommand(t, &commands.ToggleCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "\n--- Toggle Task Status ---\nEnter task ID to toggle: Task 1 marked as completed!\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	stdout, err = runCommand(t, &commands.ToggleCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Task 1 marked as incomplete!\n") {
		t.Errorf("expected incomplete, got %q", stdout)
	}

	task, _ := svc.Task(1)
	if task.Completed {
		t.Error("expected task to be pending after two toggles")
	}
}

func TestToggleCommand_InvalidID(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, err := runCommand(t, &commands.ToggleCmd{}, svc, "x\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: Please enter a valid task ID (number)!\n") {
		t.Errorf("expected invalid id error, got %q", stdout)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("invalid input must not reach the service, got %v", svc.Calls)
	}
}

func TestToggleCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "")
	svc.ToggleErr = errors.New("store unavailable")

	stdout, err := runCommand(t, &commands.ToggleCmd{}, svc, "1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(stdout, "Error: store unavailable\n") {
		t.Errorf("expected backend error, got %q", stdout)
	}
	if task, _ := svc.Task(1); task.Completed {
		t.Error("expected task to stay pending")
	}
}

// Tests for quit command
func TestQuitCommand(t *testing.T) {
	cmd := &commands.QuitCmd{}
	stdout, err := runCommand(t, cmd, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmd.Exits() {
		t.Error("quit must end the session")
	}
	expected := "\nThank you for using the Todo List Manager. Goodbye!\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for the registry
func TestDefaultRegistry_MenuOrder(t *testing.T) {
	var keys, names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		keys = append(keys, cmd.Key())
		names = append(names, cmd.Name())
	}

	wantKeys := []string{"1", "2", "3", "4", "5", "6"}
	wantNames := []string{"add", "list", "update", "delete", "toggle", "quit"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("expected keys %v, got %v", wantKeys, keys)
	}
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("expected names %v, got %v", wantNames, names)
	}
}

func TestRegistry_FindByKeyAndName(t *testing.T) {
	byKey, ok := commands.DefaultRegistry.Find("5")
	if !ok {
		t.Fatal("expected key 5 to resolve")
	}
	byName, ok := commands.DefaultRegistry.Find("toggle")
	if !ok {
		t.Fatal("expected name toggle to resolve")
	}
	if byKey != byName {
		t.Error("key and name should resolve to the same command")
	}
	if _, ok := commands.DefaultRegistry.Find("7"); ok {
		t.Error("expected key 7 to be unknown")
	}
}

func TestRegistry_DuplicateKey(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register(&commands.AddCmd{})
	if err == nil || err.Error() != "command already registered: add" {
		t.Errorf("expected duplicate error, got %v", err)
	}
}
