package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/itemdeck/internal/draft"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
	"github.com/Makepad-fr/itemdeck/internal/view"
)

func (a *app) listCommand() *cobra.Command {
	var (
		query    string
		category string
		sortKey  string
		onlyOpen bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items through the search, category and sort filters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := model.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q (want All, Todo, Bug or Feature)", category)
			}
			k, err := view.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			q := view.Query{Text: query, Category: c, Sort: k, OnlyOpen: onlyOpen}
			items := a.deck.Items.Get()
			ui.Panel(listLines(items, view.Derive(items, q)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "match name, category, priority or tag")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryAll), "All, Todo, Bug or Feature")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", string(view.SortRecent), "recent, priority or name")
	cmd.Flags().BoolVar(&onlyOpen, "open", false, "hide done items")
	return cmd
}

func (a *app) addCommand() *cobra.Command {
	var (
		category string
		priority string
		tags     string
		done     bool
	)
	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Create an item; an empty name gets a placeholder",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := model.ParseCategory(category)
			if !ok || c == model.CategoryAll {
				return fmt.Errorf("unknown category %q (want Todo, Bug or Feature)", category)
			}
			p, ok := model.ParsePriority(priority)
			if !ok {
				return fmt.Errorf("unknown priority %q (want Low, Medium or High)", priority)
			}

			f := draft.NewForm()
			f.Open()
			f.Name = strings.Join(args, " ")
			f.Category = c
			f.Priority = p
			f.TagsText = tags
			f.Done = done
			created := a.deck.Submit(f)
			ui.OK(fmt.Sprintf("added #%d %s", created.ID, created.Name))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryTodo), "Todo, Bug or Feature")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(model.PriorityMedium), "Low, Medium or High")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma separated tags")
	cmd.Flags().BoolVar(&done, "done", false, "create the item already done")
	return cmd
}

func (a *app) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle the done flag of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.existingID(args[0])
			if err != nil {
				return err
			}
			if err := a.deck.Toggle(id); err != nil {
				return err
			}
			it, _ := model.Find(a.deck.Items.Get(), id)
			state := "open"
			if it.Done {
				state = "done"
			}
			ui.OK(fmt.Sprintf("#%d %s is %s", it.ID, it.Name, state))
			return nil
		},
	}
}

func (a *app) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.existingID(args[0])
			if err != nil {
				return err
			}
			if err := a.deck.Delete(id); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("removed #%d", id))
			return nil
		},
	}
}

func (a *app) editCommand() *cobra.Command {
	var (
		name     string
		category string
		priority string
		tags     string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the name, category, priority or tags of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.existingID(args[0])
			if err != nil {
				return err
			}
			it, _ := model.Find(a.deck.Items.Get(), id)

			e := draft.NewEditor(it)
			e.Begin()
			changed := false
			if cmd.Flags().Changed("name") {
				e.SetName(name)
				changed = true
			}
			if cmd.Flags().Changed("category") {
				c, ok := model.ParseCategory(category)
				if !ok || c == model.CategoryAll {
					return fmt.Errorf("unknown category %q (want Todo, Bug or Feature)", category)
				}
				e.SetCategory(c)
				changed = true
			}
			if cmd.Flags().Changed("priority") {
				p, ok := model.ParsePriority(priority)
				if !ok {
					return fmt.Errorf("unknown priority %q (want Low, Medium or High)", priority)
				}
				e.SetPriority(p)
				changed = true
			}
			if cmd.Flags().Changed("tags") {
				e.SetTagsText(tags)
				changed = true
			}
			if !changed {
				e.Discard()
				return fmt.Errorf("edit: nothing to change (use --name, --category, --priority or --tags)")
			}

			saved := a.deck.Save(e)
			ui.OK(fmt.Sprintf("saved #%d %s", saved.ID, saved.Name))
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Todo, Bug or Feature")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Low, Medium or High")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma separated tags, replaces the current ones")
	return cmd
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals over the whole collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Panel(statsLines(view.Compute(a.deck.Items.Get())))
			return nil
		},
	}
}

// existingID parses an id argument and checks it names an item.
func (a *app) existingID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil {
		return 0, fmt.Errorf("not an item id: %s", arg)
	}
	if _, ok := model.Find(a.deck.Items.Get(), id); !ok {
		return 0, fmt.Errorf("no item with id %d (run `itemdeck ls` to see ids)", id)
	}
	return id, nil
}
