package cli

import (
	"encoding/json"
	"fmt"
)

// Input names the record files and how their keys become token sequences.
type Input struct {
	Files     []string `arg:"" type:"existingfile" help:"Input files (.csv, .tsv, .json, .yaml)"`
	KeyCol    string   `name:"key-col" help:"Column holding the record key" default:"key"`
	Delimiter string   `name:"delimiter" help:"Separator between key tokens" default:"/"`
	CIDR      bool     `name:"cidr" help:"Keys are IP prefixes, matched bit by bit"`
}

func (in *Input) newStore() recordStore {
	if in.CIDR {
		return newPrefixStore(in.KeyCol)
	}
	return newPathStore(in.Delimiter, in.KeyCol)
}

// load reads every input file into a fresh store. Records with the same key overwrite earlier ones.
func (in *Input) load(ctx *Context) (recordStore, error) {
	store := in.newStore()

	for _, file := range in.Files {
		ctx.Logger.Debug("reading records", "file", file, "keyCol", in.KeyCol)
		read := 0
		err := readRecords(file, func(record Record) error {
			key, ok := record[in.KeyCol]
			if !ok {
				return fmt.Errorf("%w %q: %v", ErrMissingKey, in.KeyCol, record)
			}
			if err := store.Insert(key, record); err != nil {
				return fmt.Errorf("invalid key %q: %w", key, err)
			}
			read++
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		ctx.Logger.Info("loaded records", "file", file, "records", read, "size", store.Size())
	}

	return store, nil
}

type ListCmd struct {
	Input  `embed:""`
	Prefix string `name:"prefix" help:"Only list records whose key starts with this prefix"`
	Format string `name:"format" help:"Output format" enum:"csv,tsv,json" default:"csv"`
}

// Run writes the records in trie order: depth first, siblings in the order their keys first appeared.
func (cmd *ListCmd) Run(ctx *Context) error {
	store, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	records, err := store.Records(cmd.Prefix)
	if err != nil {
		return fmt.Errorf("invalid prefix %q: %w", cmd.Prefix, err)
	}

	written, err := newWriter(cmd.Format, cmd.KeyCol).Write(ctx.Stdout, records)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("listed records", "records", written, "prefix", cmd.Prefix)
	return nil
}

type LookupCmd struct {
	Input `embed:""`
	Key   string `name:"key" required:"" help:"Key to match, an IP address or prefix with --cidr"`
}

// Run prints the record with the longest key that is a prefix of the given key.
func (cmd *LookupCmd) Run(ctx *Context) error {
	store, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	matched, record, found, err := store.Lookup(cmd.Key)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", cmd.Key, err)
	}
	if !found {
		fmt.Fprintf(ctx.Stdout, "no match for %s\n", cmd.Key)
		return nil
	}

	encoder := json.NewEncoder(ctx.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(withKey(record, cmd.KeyCol, matched))
}

type TreeCmd struct {
	Input `embed:""`
}

// Run prints one line per trie node with the number of records below it.
func (cmd *TreeCmd) Run(ctx *Context) error {
	store, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	return store.Fprint(ctx.Stdout)
}
