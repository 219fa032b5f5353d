package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"
	"github.com/mholt/archiver"
	"github.com/xuri/excelize/v2"
)

/*
	LCSC Part	First Category	Second Category	MFR.Part	Package	Solder Joint	Manufacturer	Library Type	Description	Datasheet	Price	Stock
	C25725	Resistors	Resistor Networks & Arrays	4D02WGJ0103TCE	0402_x4	8	Uniroyal Elec	Basic	Resistor Networks & Arrays 10KOhms ±5% 1/16W 0402_x4 RoHS	https://datasheet.lcsc.com/szlcsc/Uniroyal-Elec-4D02WGJ0103TCE_C25725.pdf	1-199:0.006956522,200-:0.002717391	79847
*/

var (
	componentsBucket = []byte("components")
	unindexedBucket  = []byte("unindexed")
)

/*
	Library is the local catalog cache: component metadata in bolt,
	descriptions searchable through a bleve index. Records land in the
	unindexed bucket first and move into the index when IndexPending
	runs, so bulk imports stay fast.
*/
type Library struct {
	root  string
	db    *bolt.DB
	index bleve.Index
}

type LibraryComponent struct {
	ID             string
	FirstCategory  string
	SecondCategory string
	MFRPart        string
	Package        string
	SolderJoint    string
	Manufacturer   string
	LibraryType    string
	Description    string
	Datasheet      string
	Basic          bool
}

/*
	Create or open library from root
*/
func NewLibrary(root string) (*Library, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(filepath.Join(root, "kparts.db"), 0666, nil)
	if err != nil {
		return nil, err
	}

	db.Update(func(tx *bolt.Tx) error {
		tx.CreateBucketIfNotExists(componentsBucket)
		tx.CreateBucketIfNotExists(unindexedBucket)

		return nil
	})

	var index bleve.Index
	ipath := filepath.Join(root, "kparts.index")
	if Exists(ipath) {
		index, err = bleve.Open(ipath)
	} else {
		index, err = bleve.New(ipath, bleve.NewIndexMapping())
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Library{
		root:  root,
		db:    db,
		index: index,
	}, nil
}

func NewDefaultLibrary() (*Library, error) {
	return NewLibrary(DefaultRoot())
}

func (l *Library) Close() {
	l.index.Close()
	l.db.Close()
}

/*
	Import the LCSC parts spreadsheet. A zip archive, as JLC ships it,
	is extracted to a temp directory first.
*/
func (l *Library) Import(src string) error {
	if strings.HasSuffix(strings.ToLower(src), ".zip") {
		dir, err := os.MkdirTemp("", "kparts-import")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		if err := archiver.Unarchive(src, dir); err != nil {
			return err
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}

		src = ""
		for _, e := range entries {
			if strings.HasSuffix(strings.ToLower(e.Name()), ".xlsx") {
				src = filepath.Join(dir, e.Name())
				break
			}
		}
		if src == "" {
			return fmt.Errorf("archive contains no xlsx sheet")
		}
	}

	f, err := excelize.OpenFile(src)
	if err != nil {
		return err
	}

	sheet := f.GetSheetList()[0]
	rows, err := f.Rows(sheet)
	if err != nil {
		return err
	}

	chrows := make(chan []string, 100)
	go func() {
		for {
			if end := !rows.Next(); end {
				close(chrows)

				return
			}

			row, err := rows.Columns()
			if err != nil {
				continue
			}

			if len(row) < 9 {
				continue
			}

			chrows <- row
		}
	}()

	/*
		amount per transaction
	*/
	k := 2000
	done := false
	for !done {
		if err := l.db.Update(func(tx *bolt.Tx) error {
			components := tx.Bucket(componentsBucket)
			unindexed := tx.Bucket(unindexedBucket)

			for j := 0; j < k; j++ {
				row, ok := <-chrows
				if !ok {
					done = true
					return nil
				}

				component := LibraryComponent{
					ID:             row[0],
					FirstCategory:  row[1],
					SecondCategory: row[2],
					MFRPart:        row[3],
					Package:        row[4],
					SolderJoint:    row[5],
					Manufacturer:   row[6],
					LibraryType:    row[7],
					Description:    row[8],
					Basic:          row[7] == "Basic",
				}
				if len(row) > 9 {
					component.Datasheet = row[9]
				}

				bytes, err := Marshal(component)
				if err != nil {
					return err
				}

				if err := components.Put([]byte(component.ID), bytes); err != nil {
					return err
				}

				/*
					ids are removed from unindexed once they are indexed
				*/
				if err := unindexed.Put([]byte(component.ID), []byte("")); err != nil {
					return err
				}
			}

			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

/*
	ImportBasic stores components streamed from the JLC basic-parts
	API.
*/
func (l *Library) ImportBasic(components <-chan *LibraryComponent, errs <-chan error) error {
	for component := range components {
		bytes, err := Marshal(*component)
		if err != nil {
			return err
		}

		if err := l.db.Update(func(tx *bolt.Tx) error {
			if err := tx.Bucket(componentsBucket).Put([]byte(component.ID), bytes); err != nil {
				return err
			}

			return tx.Bucket(unindexedBucket).Put([]byte(component.ID), []byte(""))
		}); err != nil {
			return err
		}
	}

	select {
	case err := <-errs:
		return err
	default:
		return nil
	}
}

func (l *Library) Put(component *LibraryComponent) error {
	bytes, err := Marshal(*component)
	if err != nil {
		return err
	}

	return l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(componentsBucket).Put([]byte(component.ID), bytes); err != nil {
			return err
		}

		return tx.Bucket(unindexedBucket).Put([]byte(component.ID), []byte(""))
	})
}

func (l *Library) Get(id string) *LibraryComponent {
	component := LibraryComponent{}
	found := false

	l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(componentsBucket).Get([]byte(id))
		if data == nil {
			return nil
		}

		if err := Unmarshal(data, &component); err == nil {
			found = true
		}

		return nil
	})

	if !found {
		return nil
	}

	return &component
}

/*
	IndexPending drains the unindexed bucket into the bleve index.
	Returns the number of components indexed.
*/
func (l *Library) IndexPending() (int, error) {
	ids := []string{}
	l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(unindexedBucket).ForEach(func(k, v []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})

	batch := l.index.NewBatch()
	for _, id := range ids {
		component := l.Get(id)
		if component == nil {
			continue
		}

		if err := batch.Index(id, *component); err != nil {
			return 0, err
		}
	}

	if err := l.index.Batch(batch); err != nil {
		return 0, err
	}

	return len(ids), l.db.Update(func(tx *bolt.Tx) error {
		unindexed := tx.Bucket(unindexedBucket)
		for _, id := range ids {
			if err := unindexed.Delete([]byte(id)); err != nil {
				return err
			}
		}

		return nil
	})
}

/*
	Find library components, given a search string
*/
func (l *Library) Find(text string) []*LibraryComponent {
	query := bleve.NewQueryStringQuery(text)
	request := bleve.NewSearchRequest(query)
	request.Size = 25

	result, err := l.index.Search(request)
	if err != nil {
		return []*LibraryComponent{}
	}

	components := []*LibraryComponent{}
	for _, hit := range result.Hits {
		if component := l.Get(hit.ID); component != nil {
			components = append(components, component)
		}
	}

	return components
}
