package glob

// Task is the record returned by GenerateTasks (spec §4.4
// "generate_tasks"): the positive patterns after directory expansion, and
// the options that produced them plus the stripped negative patterns.
type Task struct {
	Patterns  []string
	Options   Options
	Negatives []string
}

// GenerateTasks resolves cwd, partitions and expands patterns exactly as
// Glob's pipeline does up through step 4, but performs no traversal: no
// filesystem work happens beyond cwd resolution and the directory-existence
// checks expansion needs.
func GenerateTasks(patterns []string, opts Options) (Task, error) {
	fs := opts.FS
	cwd, err := resolveCwd(fs, opts.Cwd)
	if err != nil {
		return Task{}, err
	}

	positives, negatives, err := partition(patterns)
	if err != nil {
		return Task{}, err
	}
	if len(positives) == 0 && len(negatives) > 0 {
		positives = []string{"**/*"}
	}

	expanded := expandPositives(fs, cwd, positives, opts.ExpandDirectories)

	return Task{
		Patterns:  expanded,
		Options:   opts,
		Negatives: negatives,
	}, nil
}
