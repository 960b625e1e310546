package agent

import (
	"context"
	"fmt"
)

// maxAttachmentBytes caps how much of an attachment is preloaded.
const maxAttachmentBytes = 10 << 20 // 10 MiB

// loadAttachments downloads each of the job's attachments into the executor's
// in-memory map before the first model call. Oversized or failed downloads
// are logged at warn and skipped; they never fail the job.
func (ex *toolExecutor) loadAttachments(ctx context.Context, refs []AttachmentRef) []string {
	var names []string
	for _, ref := range refs {
		if ref.SizeBytes > maxAttachmentBytes {
			ex.deps.Logs.Append(ctx, ex.jobID, "warn",
				fmt.Sprintf("skipping attachment %q: %d bytes exceeds the %d byte limit",
					ref.Filename, ref.SizeBytes, int64(maxAttachmentBytes)), nil)
			continue
		}

		data, err := ex.deps.Storage.Download(ctx, ref.PublicURL, maxAttachmentBytes)
		if err != nil {
			ex.deps.Logs.Append(ctx, ex.jobID, "warn",
				fmt.Sprintf("failed to load attachment %q: %v", ref.Filename, err), nil)
			continue
		}

		ex.attachments[ref.Filename] = string(data)
		names = append(names, ref.Filename)
	}
	return names
}
