package services

import (
	"errors"
	"quick-notes/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockRepository is a mock implementation of NoteRepository interface
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements NoteRepository interface
var _ NoteRepository = (*MockRepository)(nil)

func (m *MockRepository) ListNotes() ([]models.Note, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockRepository) GetNote(id int64) (*models.Note, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) CreateNote(text string, priority int) (*models.Note, error) {
	args := m.Called(text, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) UpdateNote(id int64, text string, priority int) (bool, error) {
	args := m.Called(id, text, priority)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteNote(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// ==================== TESTS ====================

func TestClampPriority(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {6, 5}, {100, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPriority(tt.in), "ClampPriority(%d)", tt.in)
	}
}

func TestNoteService_Create(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		priority      int
		mockSetup     func(*MockRepository)
		expectedNote  *models.Note
		expectedError error
	}{
		{
			name:     "Success",
			text:     "buy milk",
			priority: 3,
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateNote", "buy milk", 3).Return(&models.Note{ID: 7, Text: "buy milk", Priority: 3}, nil)
			},
			expectedNote: &models.Note{ID: 7, Text: "buy milk", Priority: 3},
		},
		{
			name:     "Priority above range is clamped",
			text:     "urgent",
			priority: 9,
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateNote", "urgent", 5).Return(&models.Note{ID: 1, Text: "urgent", Priority: 5}, nil)
			},
			expectedNote: &models.Note{ID: 1, Text: "urgent", Priority: 5},
		},
		{
			name:     "Missing priority defaults to 1",
			text:     "later",
			priority: 0,
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateNote", "later", 1).Return(&models.Note{ID: 2, Text: "later", Priority: 1}, nil)
			},
			expectedNote: &models.Note{ID: 2, Text: "later", Priority: 1},
		},
		{
			name:          "Empty text",
			text:          "",
			priority:      1,
			expectedError: ErrEmptyText,
		},
		{
			name:          "Whitespace text",
			text:          "  \t",
			priority:      1,
			expectedError: ErrEmptyText,
		},
		{
			name:     "Repository error",
			text:     "x",
			priority: 1,
			mockSetup: func(repo *MockRepository) {
				repo.On("CreateNote", "x", 1).Return(nil, errors.New("disk full"))
			},
			expectedError: errors.New("create note: disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo)
			}

			service := NewNoteService(mockRepo)
			note, err := service.Create(tt.text, tt.priority)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedNote, note)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	t.Run("Existing note", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("UpdateNote", int64(4), "new text", 2).Return(true, nil)

		note, err := NewNoteService(mockRepo).Update(4, "new text", 2)

		assert.NoError(t, err)
		assert.Equal(t, &models.Note{ID: 4, Text: "new text", Priority: 2}, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing note is a no-op", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("UpdateNote", int64(99), "text", 5).Return(false, nil)

		note, err := NewNoteService(mockRepo).Update(99, "text", 12)

		assert.NoError(t, err)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty text never reaches storage", func(t *testing.T) {
		mockRepo := new(MockRepository)

		_, err := NewNoteService(mockRepo).Update(4, "", 2)

		assert.ErrorIs(t, err, ErrEmptyText)
		mockRepo.AssertNotCalled(t, "UpdateNote", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNoteService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("DeleteNote", int64(3)).Return(true, nil).Once()
	mockRepo.On("DeleteNote", int64(3)).Return(false, nil).Once()

	service := NewNoteService(mockRepo)

	ok, err := service.Delete(3)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Delete(3)
	assert.NoError(t, err)
	assert.False(t, ok)

	mockRepo.AssertExpectations(t)
}

func TestNoteService_Get(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetNote", int64(1)).Return(&models.Note{ID: 1, Text: "sample", Priority: 1}, nil)
	mockRepo.On("GetNote", int64(2)).Return(nil, nil)

	service := NewNoteService(mockRepo)

	note, err := service.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, "sample", note.Text)

	_, err = service.Get(2)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListNotes").Return([]models.Note{{ID: 1}, {ID: 2}}, nil)

	notes, err := NewNoteService(mockRepo).List()

	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	mockRepo.AssertExpectations(t)
}
