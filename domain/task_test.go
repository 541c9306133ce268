package domain

import "testing"

func TestResolvedResult(t *testing.T) {
	cases := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "result field wins",
			task: Task{Result: "installed the shelf", Description: "Answer: something else"},
			want: "installed the shelf",
		},
		{
			name: "result trimmed",
			task: Task{Result: "  done  "},
			want: "done",
		},
		{
			name: "legacy answer line",
			task: Task{Description: "Buy paint\nAnswer: matte white"},
			want: "matte white",
		},
		{
			name: "legacy result line case-insensitive",
			task: Task{Description: "RESULT: 3 cans"},
			want: "3 cans",
		},
		{
			name: "no result anywhere",
			task: Task{Description: "just a description"},
			want: "",
		},
		{
			name: "answer mid-line is not a marker",
			task: Task{Description: "the answer: is embedded here"},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.task.ResolvedResult(); got != tc.want {
				t.Errorf("ResolvedResult() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolvedResultNilReceiver(t *testing.T) {
	var task *Task
	if got := task.ResolvedResult(); got != "" {
		t.Errorf("nil task ResolvedResult() = %q, want empty", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusTodo, StatusInProgress, StatusDone} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "open", "DONE", "in_progress"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestValidTaskPriority(t *testing.T) {
	for _, p := range []int{0, PriorityLow, PriorityNormal, PriorityHigh} {
		if !ValidTaskPriority(p) {
			t.Errorf("ValidTaskPriority(%d) = false", p)
		}
	}
	for _, p := range []int{-1, 4, 10} {
		if ValidTaskPriority(p) {
			t.Errorf("ValidTaskPriority(%d) = true", p)
		}
	}
}

func TestValidProjectPriority(t *testing.T) {
	for _, p := range []string{"", ProjectPriorityLow, ProjectPriorityMedium, ProjectPriorityHigh} {
		if !ValidProjectPriority(p) {
			t.Errorf("ValidProjectPriority(%q) = false", p)
		}
	}
	if ValidProjectPriority("urgent") {
		t.Error(`ValidProjectPriority("urgent") = true`)
	}
}
