/*
Package ignore implements the normalization engine for a single ignore-rule
file.

The engine works on whole-file text and never interprets glob semantics:

  - parse text into lines (`ParseLines` / `SerializeLines`)
  - classify each line (`Classify`: blank, comment, pattern, literal)
  - reduce literal entries to an anchor/slash-insensitive key (`Key`)
  - resolve what each key currently is on disk through a `Prober`
  - deduplicate and canonicalize (`Clean`), enforce base entries, sort
  - build the canonical line for one target path (`Builder`), substituting
    the shallowest symlinked ancestor when there is one

Pattern lines (globs, negations) are preserved verbatim and only deduplicated
by exact text; rewriting them would change their matching behavior.
*/
package ignore
