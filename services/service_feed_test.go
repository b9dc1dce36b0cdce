package services

import "testing"

func TestNewPagination(t *testing.T) {
	p := NewPagination(42, 1, 10)
	if p.TotalPages != 5 {
		t.Fatalf("totalPages = %d, want 5", p.TotalPages)
	}
	if p.TotalPosts != 42 {
		t.Fatalf("totalPosts = %d, want 42", p.TotalPosts)
	}
	if !p.HasMore {
		t.Fatalf("page 1 of 5 should have more")
	}

	last := NewPagination(42, 5, 10)
	if last.HasMore {
		t.Fatalf("last page should not have more")
	}

	empty := NewPagination(0, 1, 10)
	if empty.TotalPages != 0 || empty.HasMore {
		t.Fatalf("empty feed: got %+v", empty)
	}
}

func TestNewPaginationExactMultiple(t *testing.T) {
	p := NewPagination(30, 3, 10)
	if p.TotalPages != 3 {
		t.Fatalf("totalPages = %d, want 3", p.TotalPages)
	}
	if p.HasMore {
		t.Fatalf("page 3 of 3 should not have more")
	}
}

func TestClampPaging(t *testing.T) {
	if page, _ := clampPaging(0, 10); page != 1 {
		t.Fatalf("page 0 should clamp to 1, got %d", page)
	}
	if page, _ := clampPaging(-3, 10); page != 1 {
		t.Fatalf("negative page should clamp to 1, got %d", page)
	}
	if _, limit := clampPaging(1, 0); limit != 10 {
		t.Fatalf("limit 0 should fall back to default, got %d", limit)
	}
	if _, limit := clampPaging(1, 999); limit != 50 {
		t.Fatalf("limit should cap at 50, got %d", limit)
	}
	if page, limit := clampPaging(2, 20); page != 2 || limit != 20 {
		t.Fatalf("valid paging should pass through, got %d/%d", page, limit)
	}
}
