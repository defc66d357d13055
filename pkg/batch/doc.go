/*
Package batch runs one per-file operation over a discovered list of files on a
fixed pool of workers.

	+------------+    +-------------+    +-------------+    +----------+
	| Discoverer | -> | Partitioner | -> | Worker Pool | -> | Reporter |
	+------------+    +-------------+    +------+------+    +----------+
	                                            |
	                                     +------+------+
	                                     | FailureLog  |
	                                     +-------------+

🎯 Purpose:
  - Partition the files into one contiguous slice per worker
  - Process every slice sequentially on its own goroutine
  - Keep going when a file fails and remember why
  - Surface every failure at once after all workers are done

🔄 Flow:
 1. Discover the files under the roots (any discovery error stops the run)
 2. Compute exactly N slices, empty ones included
 3. Start N workers and wait for all of them
 4. Drain the FailureLog into a Report

⚡ Guarantees:
  - Every discovered file is handed to exactly one worker, exactly once
  - Files within one slice are processed in order
  - Nothing is ordered across slices, including failure messages
  - There is no cancellation: a run always waits for every worker

🔍 Example:

	runner := batch.NewRunner[symbols.Options](remover, batch.DefaultWorkers())
	report, err := batch.Drive(ctx, discover.New(discover.OSFS()), runner, roots, opts)
	if err != nil {
		var agg *batch.AggregateError
		if errors.As(err, &agg) {
			// agg.Messages holds one line per failed file
		}
		return err
	}
*/
package batch
