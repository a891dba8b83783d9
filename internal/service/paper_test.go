package service

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"sort"
	"testing"

	"github.com/paperhub/paperhub/internal/model"
	"github.com/paperhub/paperhub/internal/repository"
)

// fakeFile satisfies multipart.File over an in-memory buffer
type fakeFile struct {
	*bytes.Reader
}

func (f *fakeFile) Close() error { return nil }

func newFakeFile(content []byte) (multipart.File, *multipart.FileHeader) {
	return &fakeFile{bytes.NewReader(content)},
		&multipart.FileHeader{Filename: "paper.pdf", Size: int64(len(content))}
}

type fakeStorage struct {
	saved     map[string][]byte
	saveErr   error
	deleteErr error

	saveCalls   int
	deleteCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(key string, file io.Reader) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	data, _ := io.ReadAll(file)
	f.saved[key] = data
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.saved, key)
	return nil
}

func (f *fakeStorage) URL(key string) string {
	return "https://media.example.com/" + key
}

type fakePaperRepo struct {
	papers   map[string]*model.Paper
	comments map[string][]model.Comment

	createErr error
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{
		papers:   map[string]*model.Paper{},
		comments: map[string][]model.Comment{},
	}
}

func (f *fakePaperRepo) Create(paper *model.Paper) error {
	if f.createErr != nil {
		return f.createErr
	}
	p := *paper
	f.papers[p.ID] = &p
	return nil
}

func (f *fakePaperRepo) List() ([]*model.Paper, error) {
	papers := make([]*model.Paper, 0, len(f.papers))
	for _, p := range f.papers {
		copied := *p
		copied.Comments = f.comments[p.ID]
		papers = append(papers, &copied)
	}
	sort.Slice(papers, func(i, j int) bool {
		if !papers[i].CreatedAt.Equal(papers[j].CreatedAt) {
			return papers[i].CreatedAt.After(papers[j].CreatedAt)
		}
		return papers[i].ID > papers[j].ID
	})
	return papers, nil
}

func (f *fakePaperRepo) ByID(id string) (*model.Paper, error) {
	p, ok := f.papers[id]
	if !ok {
		return nil, repository.ErrPaperNotFound
	}
	copied := *p
	copied.Comments = f.comments[id]
	return &copied, nil
}

func (f *fakePaperRepo) Delete(id string) error {
	if _, ok := f.papers[id]; !ok {
		return repository.ErrPaperNotFound
	}
	delete(f.papers, id)
	delete(f.comments, id)
	return nil
}

func (f *fakePaperRepo) AddComment(comment *model.Comment) error {
	f.comments[comment.PaperID] = append(f.comments[comment.PaperID], *comment)
	return nil
}

func (f *fakePaperRepo) Comments(paperID string) ([]model.Comment, error) {
	return f.comments[paperID], nil
}

func (f *fakePaperRepo) IncrementLikes(id string) (int, error) {
	p, ok := f.papers[id]
	if !ok {
		return 0, repository.ErrPaperNotFound
	}
	p.Likes++
	return p.Likes, nil
}

var (
	author = &model.User{ID: "author-1", Name: "Ada", AvatarURL: "https://media.example.com/avatars/ada.png"}
	other  = &model.User{ID: "other-1", Name: "Bob"}
	admin  = &model.User{ID: "admin-1", Name: "Root", IsAdmin: true}
)

func submitOne(t *testing.T, svc *PaperService, user *model.User, title string) *model.Paper {
	t.Helper()
	file, header := newFakeFile([]byte("%PDF-1.5 test"))
	paper, err := svc.Submit(user, SubmitPaperInput{Title: title, Category: "cs"}, file, header)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	return paper
}

func TestSubmit_PersistsRecordWithStorageReference(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	paper := submitOne(t, svc, author, "Attention Is Not All You Need")

	if paper.StorageKey == "" {
		t.Fatalf("expected storage key on created paper")
	}
	if _, ok := store.saved[paper.StorageKey]; !ok {
		t.Fatalf("object %q not in storage", paper.StorageKey)
	}
	if paper.FileURL != store.URL(paper.StorageKey) {
		t.Fatalf("file URL %q does not reference stored object", paper.FileURL)
	}
	if paper.AuthorName != author.Name || paper.AuthorAvatar != author.AvatarURL {
		t.Fatalf("author snapshot missing: %+v", paper)
	}

	got, err := svc.Get(paper.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != paper.Title {
		t.Fatalf("title mismatch: got %q", got.Title)
	}
}

func TestSubmit_EmptyTitleRejectedBeforeUpload(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	file, header := newFakeFile([]byte("%PDF-1.5"))
	_, err := svc.Submit(author, SubmitPaperInput{Title: "  "}, file, header)
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if store.saveCalls != 0 {
		t.Fatalf("storage touched on rejected submission")
	}
	if len(repo.papers) != 0 {
		t.Fatalf("record created on rejected submission")
	}
}

func TestSubmit_StorageFailureCreatesNoRecord(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	store.saveErr = errors.New("network down")
	svc := NewPaperService(repo, store)

	file, header := newFakeFile([]byte("%PDF-1.5"))
	_, err := svc.Submit(author, SubmitPaperInput{Title: "T"}, file, header)
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(repo.papers) != 0 {
		t.Fatalf("partial record created after failed upload")
	}
}

func TestSubmit_RecordFailureCleansUpObject(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	repo.createErr = errors.New("db down")
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	file, header := newFakeFile([]byte("%PDF-1.5"))
	_, err := svc.Submit(author, SubmitPaperInput{Title: "T"}, file, header)
	if err == nil {
		t.Fatalf("expected error when record insert fails")
	}
	if store.deleteCalls != 1 {
		t.Fatalf("expected one cleanup delete, got %d", store.deleteCalls)
	}
	if len(store.saved) != 0 {
		t.Fatalf("orphaned object left after successful cleanup")
	}
}

func TestDelete_NonAuthorForbidden(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	paper := submitOne(t, svc, author, "T")

	err := svc.Delete(other, paper.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Record and object untouched
	if _, err := svc.Get(paper.ID); err != nil {
		t.Fatalf("record removed on forbidden delete: %v", err)
	}
	if _, ok := store.saved[paper.StorageKey]; !ok {
		t.Fatalf("stored object removed on forbidden delete")
	}
}

func TestDelete_AuthorRemovesRecordAndObject(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	paper := submitOne(t, svc, author, "T")

	err := svc.Delete(author, paper.ID)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	_, err = svc.Get(paper.ID)
	if !errors.Is(err, repository.ErrPaperNotFound) {
		t.Fatalf("expected ErrPaperNotFound after delete, got %v", err)
	}
	if _, ok := store.saved[paper.StorageKey]; ok {
		t.Fatalf("stored object survived delete")
	}
}

func TestDelete_AdminAllowed(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	paper := submitOne(t, svc, author, "T")

	err := svc.Delete(admin, paper.ID)
	if err != nil {
		t.Fatalf("admin delete error: %v", err)
	}
}

func TestDelete_RemoteFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	store := newFakeStorage()
	svc := NewPaperService(repo, store)

	paper := submitOne(t, svc, author, "T")
	store.deleteErr = errors.New("object already absent")

	err := svc.Delete(author, paper.ID)
	if err != nil {
		t.Fatalf("delete should succeed despite remote failure, got %v", err)
	}
	_, err = svc.Get(paper.ID)
	if !errors.Is(err, repository.ErrPaperNotFound) {
		t.Fatalf("record not removed: %v", err)
	}
}

func TestAppendComment_UnknownPaper(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	svc := NewPaperService(repo, newFakeStorage())

	_, err := svc.AppendComment(author, "missing-id", "nice work")
	if !errors.Is(err, repository.ErrPaperNotFound) {
		t.Fatalf("expected ErrPaperNotFound, got %v", err)
	}
	if len(repo.comments) != 0 {
		t.Fatalf("comment created for unknown paper")
	}
}

func TestAppendComment_ReturnsUpdatedSequence(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	svc := NewPaperService(repo, newFakeStorage())

	paper := submitOne(t, svc, author, "T")

	comments, err := svc.AppendComment(other, paper.ID, "first")
	if err != nil {
		t.Fatalf("AppendComment error: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "first" {
		t.Fatalf("unexpected sequence: %+v", comments)
	}

	comments, err = svc.AppendComment(author, paper.ID, "second")
	if err != nil {
		t.Fatalf("AppendComment error: %v", err)
	}
	if len(comments) != 2 || comments[1].Text != "second" {
		t.Fatalf("unexpected sequence: %+v", comments)
	}
	if comments[1].AuthorName != author.Name {
		t.Fatalf("author snapshot missing on comment: %+v", comments[1])
	}
}

func TestAppendComment_EmptyText(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	svc := NewPaperService(repo, newFakeStorage())

	paper := submitOne(t, svc, author, "T")

	_, err := svc.AppendComment(other, paper.ID, "   ")
	if !errors.Is(err, ErrTextRequired) {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}
}

func TestLike_IncrementsCounter(t *testing.T) {
	t.Parallel()

	repo := newFakePaperRepo()
	svc := NewPaperService(repo, newFakeStorage())

	paper := submitOne(t, svc, author, "T")

	likes, err := svc.Like(paper.ID)
	if err != nil {
		t.Fatalf("Like error: %v", err)
	}
	if likes != 1 {
		t.Fatalf("expected 1 like, got %d", likes)
	}

	likes, err = svc.Like(paper.ID)
	if err != nil {
		t.Fatalf("Like error: %v", err)
	}
	if likes != 2 {
		t.Fatalf("expected 2 likes, got %d", likes)
	}

	_, err = svc.Like("missing-id")
	if !errors.Is(err, repository.ErrPaperNotFound) {
		t.Fatalf("expected ErrPaperNotFound, got %v", err)
	}
}
